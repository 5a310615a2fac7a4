package interp

import "fmt"

// Instance is a live object: its class plus one slot table holding both
// its data fields and its bound methods, per the data model's choice to
// keep both kinds of member in a single namespace.
type Instance struct {
	class  *Class
	fields map[string]*slot
	id     uint64
}

func newInstance(class *Class, id uint64) *Instance {
	return &Instance{class: class, fields: make(map[string]*slot), id: id}
}

// String renders the instance's NAME@id literal form.
func (i *Instance) String() string {
	return fmt.Sprintf("%s@%x", i.class.Name, i.id)
}
