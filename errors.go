package norm

import "fmt"

// AlreadyExistsError is returned by Table.Insert when the Id is already
// present; the write is rejected and no index is touched.
type AlreadyExistsError[T any] struct {
	Id       Id[T]
	TypeName string
}

func (e *AlreadyExistsError[T]) Error() string {
	return fmt.Sprintf("entity already exists: id=%q type=%s", e.Id.Value(), e.TypeName)
}

// NotFoundError is returned by Table.Update and Table.Delete when the Id is
// absent.
type NotFoundError[T any] struct {
	Id       Id[T]
	TypeName string
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("entity not found: id=%q type=%s", e.Id.Value(), e.TypeName)
}
