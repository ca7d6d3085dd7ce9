// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"bytes"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/licensevm/types"
)

func TestTokenKey(t *testing.T) {
	t.Parallel()

	tt := []struct {
		id  types.TokenID
		key []byte
	}{
		{
			id:  7,
			key: append([]byte{tokenPrefix, ByteDelimiter}, []byte{0, 0, 0, 7}...),
		},
		{
			id:  0x01020304,
			key: append([]byte{tokenPrefix, ByteDelimiter}, []byte{1, 2, 3, 4}...),
		},
	}
	for i, tv := range tt {
		if k := TokenKey(tv.id); !bytes.Equal(k, tv.key) {
			t.Fatalf("#%d: key expected %q, got %q", i, tv.key, k)
		}
	}
}

func TestParseOwnedKey(t *testing.T) {
	t.Parallel()

	owners := []types.Address{
		types.AccountAddress(common.HexToAddress("0xaa")),
		types.NewContractAddress(3, 0),
	}
	for i, owner := range owners {
		k := OwnedKey(owner, 9)
		decodedOwner, id, err := ParseOwnedKey(k)
		if err != nil {
			t.Fatalf("#%d: unexpected error %v", i, err)
		}
		if decodedOwner != owner {
			t.Fatalf("#%d: owner expected %v, got %v", i, owner, decodedOwner)
		}
		if id != 9 {
			t.Fatalf("#%d: token expected 9, got %d", i, id)
		}
	}

	if _, _, err := ParseOwnedKey([]byte{ownedPrefix, ByteDelimiter, 0xff}); err != ErrCorruptKey {
		t.Fatalf("err expected %v, got %v", ErrCorruptKey, err)
	}
}

func TestAdministratorRoundTrip(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	if _, has, err := GetAdministrator(db); err != nil || has {
		t.Fatalf("fresh db: has %v err %v", has, err)
	}

	admin := types.AccountAddress(common.HexToAddress("0x01"))
	if err := SetAdministrator(db, admin); err != nil {
		t.Fatal(err)
	}
	got, has, err := GetAdministrator(db)
	if err != nil {
		t.Fatal(err)
	}
	if !has || got != admin {
		t.Fatalf("administrator expected %v, got %v (has %v)", admin, got, has)
	}
}

func TestTokenMetadataRoundTrip(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	md := &TokenMetadata{URL: "https://licenses.example/00000007"}
	if err := PutTokenMetadata(db, 7, md); err != nil {
		t.Fatal(err)
	}
	got, has, err := GetTokenMetadata(db, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !has || got.URL != md.URL {
		t.Fatalf("metadata expected %+v, got %+v (has %v)", md, got, has)
	}

	if _, has, err := GetTokenMetadata(db, 8); err != nil || has {
		t.Fatalf("missing token: has %v err %v", has, err)
	}
}
