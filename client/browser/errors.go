package browser

import "fmt"

// Object identifies one of the host objects the accessors require.
type Object int

const (
	ObjectWindow Object = iota
	ObjectDocument
	ObjectBody
)

func (o Object) String() string {
	switch o {
	case ObjectWindow:
		return "window"
	case ObjectDocument:
		return "document"
	case ObjectBody:
		return "body"
	}
	return fmt.Sprintf("Object(%d)", int(o))
}

// AbsentError reports that a required host object does not exist.
type AbsentError struct {
	Object Object
}

func (e *AbsentError) Error() string {
	return e.Object.String() + " undefined"
}
