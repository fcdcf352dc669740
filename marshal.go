package url

// MarshalText yields the URL as UTF-8 encoded bytes.
func (u *Url) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// MarshalBinary is equivalent to MarshalText.
func (u *Url) MarshalBinary() ([]byte, error) {
	return u.MarshalText()
}

// UnmarshalText replaces u's content by parsing b as a URI reference.
func (u *Url) UnmarshalText(b []byte) error {
	v, err := ParseReference(string(b))
	if err != nil {
		return err
	}

	*u = *v

	return nil
}

// UnmarshalBinary is equivalent to UnmarshalText.
func (u *Url) UnmarshalBinary(b []byte) error {
	return u.UnmarshalText(b)
}
