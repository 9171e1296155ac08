// Package file reads input documents, memory-mapping them when the platform
// allows and falling back to a plain [os.File] otherwise.
package file
