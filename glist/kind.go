package glist

import "strconv"

// Kind identifies which of the supported payload types a [Value] holds.
type Kind uint8

// Supported payload kinds.
const (
	KindPtr Kind = iota
	KindInt32
	KindUint32
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindPtr:     "ptr",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// String returns the lower-case Go type name of the kind, e.g. "int32".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
