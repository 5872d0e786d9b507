package setting

// CheckDependence reports whether meta is currently enabled given the live
// values in ds. A setting with no dependence list is always enabled. A
// dependence entry matches when the data set holds an equal value under the
// same key; entries whose key is absent from the data set never match.
func CheckDependence(meta *Meta, ds *DataSet) bool {
	if len(meta.Dependence) == 0 {
		return true
	}

	matches := 0
	for _, required := range meta.Dependence {
		current, err := ds.Get(required.Key)
		if err != nil {
			continue
		}
		if current.Equal(required) {
			matches++
		}
	}

	switch meta.DependenceMode {
	case DependenceAll:
		return matches == len(meta.Dependence)
	case DependenceAny:
		return matches > 0
	default:
		return true
	}
}
