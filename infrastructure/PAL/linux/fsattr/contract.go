package fsattr

// Contract manages the ext-style immutable file attribute (chattr +i/-i).
type Contract interface {
	SetImmutable(path string) error
	// ClearImmutable removes the immutable attribute. A missing file is
	// tolerated: there is nothing to unlock.
	ClearImmutable(path string) error
	IsImmutable(path string) (bool, error)
}
