package lib

import "os"

// LocalFileExists checks if a file exists in the received path
func LocalFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}
