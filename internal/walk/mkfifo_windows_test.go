package walk

import "errors"

func mkfifo(string) error {
	return errors.New("mkfifo: not supported on windows")
}
