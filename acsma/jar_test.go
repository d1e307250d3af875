/*
NAME
  jar_test.go

DESCRIPTION
  jar_test.go tests the bounded receive-dedup jar.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package acsma

import "testing"

func TestJarContainsAfterPush(t *testing.T) {
	j := newJar(4)
	if j.contains(1, 1) {
		t.Fatalf("contains(1, 1) = true before push")
	}
	j.push(1, 1)
	if !j.contains(1, 1) {
		t.Errorf("contains(1, 1) = false after push")
	}
}

func TestJarEvictsOldestAtCapacity(t *testing.T) {
	j := newJar(2)
	j.push(1, 1)
	j.push(1, 2)
	j.push(1, 3)

	if j.contains(1, 1) {
		t.Errorf("contains(1, 1) = true, want evicted")
	}
	if !j.contains(1, 2) || !j.contains(1, 3) {
		t.Errorf("jar lost a non-evicted key")
	}
}

func TestJarDistinguishesSrc(t *testing.T) {
	j := newJar(4)
	j.push(1, 5)
	if j.contains(2, 5) {
		t.Errorf("contains(2, 5) = true, want false (different src)")
	}
}
