package bulk

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/grnbulk/domain"
	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/value"
)

// DecodeObject decodes any value container.
//
// A Bulk whose domain is unset takes rng's id before decoding; an already set domain is
// never overwritten. Vectors and uvectors go through DecodeVector and DecodeUVector.
//
// Parameters:
//   - obj: The container to decode; nil and Void decode to value.Absent
//   - rng: Optional range of the column the object was read from
//
// Returns:
//   - value.Value: The decoded value
//   - error: errs.ErrUnsupportedObjectType for container types other than void, bulk,
//     vector and uvector
func (dec *Decoder) DecodeObject(obj Object, rng *domain.Descriptor) (value.Value, error) {
	if obj == nil {
		return value.Absent{}, nil
	}

	switch o := obj.(type) {
	case Void, *Void:
		return value.Absent{}, nil
	case *Bulk:
		if o == nil || o.IsEmpty() {
			return value.Absent{}, nil
		}
		if rng != nil && o.SetDomainIfUnset(rng.ID) {
			dec.log().Debug("bulk domain back-filled from range",
				zap.Uint32("domain", uint32(rng.ID)),
				zap.String("range", rng.Name))
		}

		return dec.Decode(o), nil
	case *Vector:
		if o == nil {
			return value.Absent{}, nil
		}

		return DecodeVector(o), nil
	case *UVector:
		if o == nil {
			return value.Absent{}, nil
		}

		return DecodeUVector(o), nil
	}

	if obj.ObjectType() == format.ObjectVoid {
		return value.Absent{}, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedObjectType, obj.ObjectType())
}
