package utils

import (
	"net"
)

// IsAddressAvailable reports whether a TCP listener can be bound on addr ("host:port")
func IsAddressAvailable(addr string) bool {
	Verbose("Checking if %s is available", addr)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		Verbose("error: %v", err)
		return false
	}

	defer listener.Close()
	return true
}
