package stack

import "errors"

var ErrEmptyStack = errors.New("stack is empty")

type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a last-in-first-out container backed by a singly linked list.
// The zero value is an empty stack ready to use. It is not safe for concurrent use.
type Stack[T any] struct {
	head *node[T]
	size int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(v T) {
	s.head = &node[T]{value: v, next: s.head}
	s.size++
}

func (s *Stack[T]) Pop() (T, error) {
	if s.head == nil {
		var noop T
		return noop, ErrEmptyStack
	}

	v := s.head.value
	s.head = s.head.next
	s.size--

	return v, nil
}

func (s *Stack[T]) Peek() (T, error) {
	if s.head == nil {
		var noop T
		return noop, ErrEmptyStack
	}
	return s.head.value, nil
}

func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

func (s *Stack[T]) Size() int {
	return s.size
}
