/*
Package crypto holds the key and signature types used to authorize
transactions. Only ed25519 keys are supported. A public key is turned into a
bazaar.Condition that the signature decorator places in the context of the
handlers.
*/
package crypto
