/*
NAME
  jar.go

DESCRIPTION
  jar.go implements the receive-dedup jar: a bounded, insertion-ordered
  ring buffer of recently seen sequence numbers.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package acsma

// jar is a bounded ring buffer of recently received (src, seq) pairs used
// to suppress re-forwarding duplicate Data frames to the reader, while
// still ACKing every occurrence. Capacity eviction is oldest-first.
type jar struct {
	capacity int
	order    []jarKey
	seen     map[jarKey]struct{}
}

type jarKey struct {
	src uint8
	seq uint8
}

func newJar(capacity int) *jar {
	return &jar{capacity: capacity, seen: make(map[jarKey]struct{}, capacity)}
}

// contains reports whether (src, seq) was pushed and not yet evicted.
func (j *jar) contains(src, seq uint8) bool {
	_, ok := j.seen[jarKey{src, seq}]
	return ok
}

// push records (src, seq), evicting the oldest entry if the jar is full.
// Pushing an already-present key is a no-op: it does not move the key to
// the back of the eviction order.
func (j *jar) push(src, seq uint8) {
	key := jarKey{src, seq}
	if _, ok := j.seen[key]; ok {
		return
	}
	if len(j.order) >= j.capacity {
		oldest := j.order[0]
		j.order = j.order[1:]
		delete(j.seen, oldest)
	}
	j.order = append(j.order, key)
	j.seen[key] = struct{}{}
}
