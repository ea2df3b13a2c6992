package core

import "fmt"

// InvalidID marks an unassigned identity token.
const InvalidID uint32 = 0xFFFFFFFF

// IdentifierPool issues stable identity tokens from a monotonically
// increasing counter. A token is never reissued, even after Release, so two
// distinct owners can never collide on a key: a holder that outlives the
// release (a registry on the other side of an ownership boundary) keeps a
// key no later owner can inherit.
type IdentifierPool struct {
	next   uint32
	owners map[uint32]interface{}
}

func NewIdentifierPool() *IdentifierPool {
	return &IdentifierPool{
		owners: make(map[uint32]interface{}),
	}
}

// Acquire returns a fresh token owned by the given owner.
func (p *IdentifierPool) Acquire(owner interface{}) uint32 {
	id := p.next
	p.next++
	p.owners[id] = owner
	return id
}

// Owner returns the owner registered for the token, or nil if the token was
// never issued or has been released.
func (p *IdentifierPool) Owner(id uint32) interface{} {
	return p.owners[id]
}

// Release forgets the owner behind the token. The token itself stays
// retired forever.
func (p *IdentifierPool) Release(id uint32) error {
	if _, ok := p.owners[id]; !ok {
		return fmt.Errorf("identifier pool: id '%d' is not live. Nothing was done", id)
	}
	delete(p.owners, id)
	return nil
}
