package templates

import (
	"strconv"
	"strings"

	qt "github.com/valyala/quicktemplate"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// CombineGen renders combine/signals.go: arity-N computed and effect
// combinators over the core engine, up to the given parameter count.
func CombineGen(count int) string {
	bb := qt.AcquireByteBuffer()
	defer qt.ReleaseByteBuffer(bb)

	qw := qt.AcquireWriter(bb)
	n := qw.N()

	n.S("package combine\n\nimport \"github.com/vyredo/xdom/signals\"\n\n")
	for i := 1; i <= count; i++ {
		combineComputed(n, i)
		combineEffect(n, i)
	}
	qt.ReleaseWriter(qw)

	return string(bb.B)
}

func combineComputed(n *qt.QWriter, arity int) {
	n.S("func Computed")
	n.D(arity)
	n.S("[")
	n.S(prefixedStrings("T", arity))
	n.S(", O comparable](\n")
	n.S("\trs *signals.ReactiveSystem,\n")
	for i := 0; i < arity; i++ {
		n.S("\td")
		n.D(i)
		n.S(" signals.Readable[T")
		n.D(i)
		n.S("],\n")
	}
	n.S("\tfn func(")
	n.S(prefixedStrings("T", arity))
	n.S(") (O, error),\n")
	n.S(") *signals.ReadonlySignal[O] {\n")
	n.S("\treturn signals.Computed(rs, func(oldValue O) (O, error) {\n")
	n.S("\t\tvar zero O\n")
	for i := 0; i < arity; i++ {
		n.S("\t\tv")
		n.D(i)
		n.S(", err := d")
		n.D(i)
		n.S(".Read()\n\t\tif err != nil {\n\t\t\treturn zero, err\n\t\t}\n")
	}
	n.S("\t\treturn fn(")
	n.S(prefixedStrings("v", arity))
	n.S(")\n\t})\n}\n\n")
}

func combineEffect(n *qt.QWriter, arity int) {
	n.S("func Effect")
	n.D(arity)
	n.S("[")
	n.S(prefixedStrings("T", arity))
	n.S(" comparable](\n")
	n.S("\trs *signals.ReactiveSystem,\n")
	for i := 0; i < arity; i++ {
		n.S("\td")
		n.D(i)
		n.S(" signals.Readable[T")
		n.D(i)
		n.S("],\n")
	}
	n.S("\tfn func(")
	n.S(prefixedStrings("T", arity))
	n.S(") error,\n")
	n.S(") (stop func() error, err error) {\n")
	n.S("\treturn signals.Effect(rs, func() error {\n")
	for i := 0; i < arity; i++ {
		n.S("\t\tv")
		n.D(i)
		n.S(", err := d")
		n.D(i)
		n.S(".Read()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
	}
	n.S("\t\treturn fn(")
	n.S(prefixedStrings("v", arity))
	n.S(")\n\t})\n}\n\n")
}
