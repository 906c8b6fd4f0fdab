package utils

// PermError is a constant error that retrying or re-running cannot fix.
type PermError string

func (e PermError) Error() string {
	return string(e)
}

func (e PermError) IsPermanent() bool {
	return true
}
