// Package shard derives the keys that exported change records are filed under.
package shard

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash/fnv"
)

// ParentPK returns the partition key for a change to the node named childName
// under parentPath, in the form "<parentPath>#<shard>". Changes to siblings
// share the parent path prefix; with numShards>1 the child name picks one of
// numShards two-digit hex suffixes, so every change to one node lands on the
// same key.
func ParentPK(parentPath, childName string, numShards int) string {
	if numShards <= 1 {
		return fmt.Sprintf("%s#00", parentPath)
	}
	h := fnv.New32a()
	h.Write([]byte(childName))
	shard := h.Sum32() % uint32(numShards)
	return fmt.Sprintf("%s#%02x", parentPath, shard)
}

// SequenceKey returns the sort key of the change with sequence number seq
// on the node at path.
func SequenceKey(path string, seq uint64) string {
	data := fmt.Sprintf("%s#%d", path, seq)
	h := sha256.Sum256([]byte(data))
	return hex.EncodeToString(h[:16])
}
