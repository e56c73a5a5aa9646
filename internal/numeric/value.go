package numeric

import (
	"fmt"
	"math/big"
	"strings"
)

// Value is the result of an operation. Concrete types cover the three result
// shapes of the toolkit: a single integer, a boolean, and an ordered integer
// sequence.
type Value interface {
	fmt.Stringer
}

// IntValue holds a single integer result (factorial, Fibonacci term, prime count).
type IntValue struct {
	Int *big.Int
}

func (v IntValue) String() string {
	if v.Int == nil {
		return "<nil>"
	}
	return v.Int.String()
}

// BoolValue holds a primality verdict.
type BoolValue struct {
	Bool bool
}

func (v BoolValue) String() string {
	if v.Bool {
		return "true"
	}
	return "false"
}

// YesNo renders the verdict the way the demonstration driver prints it.
func (v BoolValue) YesNo() string {
	if v.Bool {
		return "Yes"
	}
	return "No"
}

// SeqValue holds an ordered integer sequence result.
type SeqValue struct {
	Seq []*big.Int
}

// String renders the sequence as a bracketed, space-separated list,
// e.g. "[0 1 1 2 3 5 8 13 21 34]".
func (v SeqValue) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.Seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(x.String())
	}
	b.WriteByte(']')
	return b.String()
}
