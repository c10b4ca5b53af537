package interp

import "github.com/Vercily/js-tracker/value"

// accessorObject is a value.Object backing an ObjectExpression that defines
// at least one "get"/"set" accessor property (SPEC_FULL.md §6). Plain data
// properties fall through to an embedded value.PlainObject; reading or
// writing an accessor key instead invokes the corresponding getter/setter
// callable with the object itself as the receiver.
type accessorObject struct {
	plain   *value.PlainObject
	getters map[string]value.Callable
	setters map[string]value.Callable
}

func newAccessorObject() *accessorObject {
	return &accessorObject{plain: value.NewPlainObject()}
}

func (o *accessorObject) defineGetter(key string, fn value.Callable) {
	if o.getters == nil {
		o.getters = make(map[string]value.Callable)
	}
	o.getters[key] = fn
}

func (o *accessorObject) defineSetter(key string, fn value.Callable) {
	if o.setters == nil {
		o.setters = make(map[string]value.Callable)
	}
	o.setters[key] = fn
}

func (o *accessorObject) Get(key string) (value.Value, bool) {
	if fn, ok := o.getters[key]; ok {
		v, err := fn.Call(o, nil)
		if err != nil {
			rethrow(err)
		}
		return v, true
	}
	return o.plain.Get(key)
}

func (o *accessorObject) Set(key string, v value.Value) error {
	if fn, ok := o.setters[key]; ok {
		_, err := fn.Call(o, []value.Value{v})
		return err
	}
	return o.plain.Set(key, v)
}

func (o *accessorObject) Delete(key string) bool {
	delete(o.getters, key)
	delete(o.setters, key)
	return o.plain.Delete(key)
}

func (o *accessorObject) Has(key string) bool {
	if _, ok := o.getters[key]; ok {
		return true
	}
	if _, ok := o.setters[key]; ok {
		return true
	}
	return o.plain.Has(key)
}

func (o *accessorObject) OwnKeys() []string {
	keys := o.plain.OwnKeys()
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
	}
	addMissing := func(m map[string]value.Callable) {
		for k := range m {
			if !seen[k] {
				keys = append(keys, k)
				seen[k] = true
			}
		}
	}
	addMissing(o.getters)
	addMissing(o.setters)
	return keys
}
