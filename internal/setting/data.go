package setting

// Data is the current value of one setting, joined to its Meta by key. Only
// the field matching the declared type is meaningful; the others stay zero.
type Data struct {
	Key  string
	Type Type

	Bool   bool
	Int    int
	Float  float64
	String string
	List   []ListElement
	Flags  []string
}

// Equal reports whether two data records hold the same value. Records of
// different keys or types are never equal.
func (d *Data) Equal(other *Data) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Key != other.Key || d.Type != other.Type {
		return false
	}

	switch d.Type {
	case TypeBool, TypeBoolNumeric:
		return d.Bool == other.Bool
	case TypeInt:
		return d.Int == other.Int
	case TypeFloat:
		return d.Float == other.Float
	case TypeString, TypeFrames, TypeEnum, TypeLoadFile, TypeSaveFile, TypeSaveFolder:
		return d.String == other.String
	case TypeList:
		if len(d.List) != len(other.List) {
			return false
		}
		for i := range d.List {
			if d.List[i] != other.List[i] {
				return false
			}
		}
		return true
	case TypeFlags:
		if len(d.Flags) != len(other.Flags) {
			return false
		}
		for i := range d.Flags {
			if d.Flags[i] != other.Flags[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// DataSet holds the current values for every value-carrying setting of one
// layer configuration, keyed by setting key. Iteration order follows the
// declaration order of the meta tree it was built from.
type DataSet struct {
	keys   []string
	values map[string]*Data
}

// NewDataSet builds a data set from a meta tree with every setting at its
// default value. Group nodes contribute no entry; their children do.
func NewDataSet(metas MetaSet) (*DataSet, error) {
	ds := &DataSet{values: make(map[string]*Data)}

	var walkErr error
	metas.Walk(func(meta *Meta) {
		if walkErr != nil || meta.Type == TypeGroup {
			return
		}
		data, err := DefaultData(meta)
		if err != nil {
			walkErr = err
			return
		}
		ds.put(data)
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return ds, nil
}

// DefaultData creates a data record holding meta's default value.
func DefaultData(meta *Meta) (*Data, error) {
	data := &Data{Key: meta.Key, Type: meta.Type}

	switch spec := meta.Spec.(type) {
	case *BoolSpec:
		data.Bool = spec.Default
	case *IntSpec:
		data.Int = spec.Default
	case *FloatSpec:
		data.Float = spec.Default
	case *StringSpec:
		data.String = spec.Default
	case *FramesSpec:
		data.String = spec.Default
	case *EnumSpec:
		data.String = spec.Default
	case *FlagsSpec:
		data.Flags = append([]string(nil), spec.Default...)
	case *ListSpec:
		data.List = append([]ListElement(nil), spec.Default...)
	case *FilesystemSpec:
		data.String = spec.Default
	default:
		return nil, &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
	}
	return data, nil
}

func (ds *DataSet) put(data *Data) {
	if _, exists := ds.values[data.Key]; !exists {
		ds.keys = append(ds.keys, data.Key)
	}
	ds.values[data.Key] = data
}

// Len returns the number of values in the set.
func (ds *DataSet) Len() int { return len(ds.keys) }

// Keys returns the setting keys in declaration order.
func (ds *DataSet) Keys() []string {
	return append([]string(nil), ds.keys...)
}

// Get resolves the data record for key.
func (ds *DataSet) Get(key string) (*Data, error) {
	data, ok := ds.values[key]
	if !ok {
		return nil, NewValueNotFoundError(key)
	}
	return data, nil
}

// Set stores a data record, replacing any previous value for its key.
func (ds *DataSet) Set(data *Data) {
	ds.put(data)
}

// Bool returns the boolean value for key. The setting must be bool-typed.
func (ds *DataSet) Bool(key string) (bool, error) {
	data, err := ds.Get(key)
	if err != nil {
		return false, err
	}
	if data.Type != TypeBool && data.Type != TypeBoolNumeric {
		return false, &UnsupportedTypeError{Key: key, Type: data.Type}
	}
	return data.Bool, nil
}
