package element

// String is a free-form text input.
type String struct {
	base
	value string
}

// NewString builds a string element seeded with defaultValue.
func NewString(name, defaultValue string, opts ...Option) *String {
	return &String{
		base:  newBase(name, KindString, opts),
		value: defaultValue,
	}
}

// Value returns the current text.
func (e *String) Value() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.value, nil
}

// SetValue replaces the current text and notifies subscribers.
func (e *String) SetValue(v string) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.value = v
	e.notify()
	return nil
}

// Get implements Element.
func (e *String) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Int is an integer input.
type Int struct {
	base
	value int
}

// NewInt builds an integer element seeded with defaultValue.
func NewInt(name string, defaultValue int, opts ...Option) *Int {
	return &Int{
		base:  newBase(name, KindInt, opts),
		value: defaultValue,
	}
}

// Value returns the current integer.
func (e *Int) Value() (int, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	return e.value, nil
}

// SetValue replaces the current integer and notifies subscribers.
func (e *Int) SetValue(v int) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.value = v
	e.notify()
	return nil
}

// Get implements Element.
func (e *Int) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Float is a floating point input.
type Float struct {
	base
	value float64
}

// NewFloat builds a float element seeded with defaultValue.
func NewFloat(name string, defaultValue float64, opts ...Option) *Float {
	return &Float{
		base:  newBase(name, KindFloat, opts),
		value: defaultValue,
	}
}

// Value returns the current float.
func (e *Float) Value() (float64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	return e.value, nil
}

// SetValue replaces the current float and notifies subscribers.
func (e *Float) SetValue(v float64) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.value = v
	e.notify()
	return nil
}

// Get implements Element.
func (e *Float) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Bool is a checkbox style input.
type Bool struct {
	base
	value bool
}

// NewBool builds a boolean element seeded with defaultValue.
func NewBool(name string, defaultValue bool, opts ...Option) *Bool {
	return &Bool{
		base:  newBase(name, KindBool, opts),
		value: defaultValue,
	}
}

// Value returns the current boolean.
func (e *Bool) Value() (bool, error) {
	if err := e.ready(); err != nil {
		return false, err
	}
	return e.value, nil
}

// SetValue replaces the current boolean and notifies subscribers.
func (e *Bool) SetValue(v bool) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.value = v
	e.notify()
	return nil
}

// Get implements Element.
func (e *Bool) Get() (any, error) {
	v, err := e.Value()
	if err != nil {
		return nil, err
	}
	return v, nil
}
