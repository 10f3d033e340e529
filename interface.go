package clone

import "github.com/mohae/deepcopy"

// Copier is implemented by types that duplicate themselves. Clone returns the result of DeepCopy
// instead of treating such a value as a primitive.
//
// It is the interface github.com/mohae/deepcopy consults, so types written for that package work here
// unchanged.
type Copier = deepcopy.Interface
