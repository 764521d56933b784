// Package todo holds the task list, its rendering, and its storage file.
package todo

import (
	"errors"
	"fmt"
	"time"
)

// ErrOutOfRange is returned when an index does not address a task.
var ErrOutOfRange = errors.New("index out of range")

// IndexError reports an index that is not below the list length.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	noun := "tasks"
	if e.Len == 1 {
		noun = "task"
	}
	return fmt.Sprintf("task %d out of range (%d %s)", e.Index, e.Len, noun)
}

// Unwrap returns ErrOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// Clock supplies the creation time of new tasks.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now().Local()
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// Task represents a single entry in the list.
type Task struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"time_created"`
}

// NewTask creates a task stamped with clock's current time.
// Name and description are stored as given, empty strings included.
func NewTask(clock Clock, name, description string) Task {
	if clock == nil {
		clock = SystemClock{}
	}
	return Task{
		Name:        name,
		Description: description,
		CreatedAt:   clock.Now(),
	}
}

// List is the ordered collection of tasks persisted in the storage file.
type List struct {
	Tasks []Task `json:"tasks"`
}

// New returns an empty list.
func New() *List {
	return &List{Tasks: []Task{}}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.Tasks)
}

// Add appends a task. Its index is Len()-1 afterwards.
func (l *List) Add(task Task) {
	l.Tasks = append(l.Tasks, task)
}

// Get returns the task at index for in-place edits.
func (l *List) Get(index int) (*Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	return &l.Tasks[index], nil
}

// Remove deletes and returns the task at index. Later tasks move down
// by one position.
func (l *List) Remove(index int) (Task, error) {
	if err := l.checkIndex(index); err != nil {
		return Task{}, err
	}
	task := l.Tasks[index]
	l.Tasks = append(l.Tasks[:index], l.Tasks[index+1:]...)
	return task, nil
}

func (l *List) checkIndex(index int) error {
	if index < 0 || index >= len(l.Tasks) {
		return &IndexError{Index: index, Len: len(l.Tasks)}
	}
	return nil
}
