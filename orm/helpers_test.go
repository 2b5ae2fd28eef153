package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// ownedCounter is a minimal model used to exercise buckets and indexes.
type ownedCounter struct {
	Metadata *bazaar.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    []byte           `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Count    int64            `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Tags     []string         `protobuf:"bytes,4,rep,name=tags,proto3" json:"tags,omitempty"`
}

var _ Model = (*ownedCounter)(nil)

func newCounter(owner string, count int64, tags ...string) *ownedCounter {
	return &ownedCounter{
		Metadata: &bazaar.Metadata{Schema: 1},
		Owner:    []byte(owner),
		Count:    count,
		Tags:     tags,
	}
}

func (c *ownedCounter) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return err
	}
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

func (c *ownedCounter) Copy() CloneableData {
	tags := make([]string, len(c.Tags))
	copy(tags, c.Tags)
	return &ownedCounter{
		Metadata: c.Metadata.Copy(),
		Owner:    append([]byte(nil), c.Owner...),
		Count:    c.Count,
		Tags:     tags,
	}
}

type wireOwnedCounter ownedCounter

func (m *wireOwnedCounter) Reset()         { *m = wireOwnedCounter{} }
func (m *wireOwnedCounter) String() string { return proto.CompactTextString(m) }
func (*wireOwnedCounter) ProtoMessage()    {}

func (m *ownedCounter) Marshal() ([]byte, error) {
	return proto.Marshal((*wireOwnedCounter)(m))
}

func (m *ownedCounter) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wireOwnedCounter)(m))
}

func ownerIndexer(obj Object) ([]byte, error) {
	c, ok := obj.Value().(*ownedCounter)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	if len(c.Owner) == 0 {
		return nil, nil
	}
	return c.Owner, nil
}

func tagsIndexer(obj Object) ([][]byte, error) {
	c, ok := obj.Value().(*ownedCounter)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	keys := make([][]byte, 0, len(c.Tags))
	for _, t := range c.Tags {
		keys = append(keys, []byte(t))
	}
	return keys, nil
}
