package url

// Builder methods. Each With* method mutates the receiver in place and
// returns it for chaining; unlike a value-typed URI, chaining here never
// copies the underlying buffer. A failing With* call panics with a
// ProgrammingError, since a chained call site has no good way to inspect
// an error mid-chain — callers who need ordinary error handling should
// call the matching Set* method directly instead.

func (u *Url) WithScheme(scheme string) *Url {
	if err := u.SetScheme(scheme); err != nil {
		panicProgrammingError("WithScheme", err.Error())
	}

	return u
}

func (u *Url) WithUserInfo(user, password string, hasPassword bool) *Url {
	if err := u.SetUserInfo(user, password, hasPassword); err != nil {
		panicProgrammingError("WithUserInfo", err.Error())
	}

	return u
}

func (u *Url) WithHost(host string) *Url {
	if err := u.SetHost(host); err != nil {
		panicProgrammingError("WithHost", err.Error())
	}

	return u
}

func (u *Url) WithPort(digits string) *Url {
	if err := u.SetPort(digits); err != nil {
		panicProgrammingError("WithPort", err.Error())
	}

	return u
}

func (u *Url) WithPath(plain string) *Url {
	if err := u.SetPath(plain); err != nil {
		panicProgrammingError("WithPath", err.Error())
	}

	return u
}

func (u *Url) WithQuery(plain string) *Url {
	if err := u.SetQuery(plain); err != nil {
		panicProgrammingError("WithQuery", err.Error())
	}

	return u
}

func (u *Url) WithFragment(plain string) *Url {
	if err := u.SetFragment(plain); err != nil {
		panicProgrammingError("WithFragment", err.Error())
	}

	return u
}
