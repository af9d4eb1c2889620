// Package keygen generates and validates the SSH keys used for cluster node
// administrator logins.
//
// Compute nodes only accept RSA keys in OpenSSH authorized_keys format, so
// both generation and validation are restricted to ssh-rsa.
package keygen
