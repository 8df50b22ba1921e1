package tlv_test

import (
	"fmt"
	"log"

	"github.com/njordio/ndn-tlv/pkg/tlv"
)

// Component is an NDN GenericNameComponent: type 8 with a raw byte payload.
type Component struct {
	Name tlv.Bytes
}

func (*Component) Type() uint64 { return 8 }

func (c *Component) ValueSize() int { return c.Name.Size() }

func (c *Component) AppendValue(buf []byte) []byte { return c.Name.Append(buf) }

func (c *Component) DecodeValue(r *tlv.Reader) error { return c.Name.DecodeFrom(r) }

// Example demonstrates encoding a record and decoding it back.
func Example() {
	encoded := tlv.Encode(&Component{Name: tlv.Bytes("hello")})
	fmt.Printf("% x\n", encoded)

	decoded, err := tlv.Decode[*Component](tlv.NewReader(encoded))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(decoded.Name))
	// Output:
	// 08 05 68 65 6c 6c 6f
	// hello
}

// ExampleDecodeSequence decodes a bounded region holding a run of
// same-shaped records.
func ExampleDecodeSequence() {
	region := tlv.AppendSequence(nil, []*Component{
		{Name: tlv.Bytes("hello")},
		{Name: tlv.Bytes("world")},
	})

	seq, err := tlv.DecodeSequence[*Component](tlv.NewReader(region))
	if err != nil {
		log.Fatal(err)
	}
	for _, c := range seq {
		fmt.Println(string(c.Name))
	}
	// Output:
	// hello
	// world
}
