// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"github.com/ava-labs/licensevm/types"
)

// Genesis carries the deployment-time configuration of one ledger
// instance.
type Genesis struct {
	// MetadataBaseURL is the prefix of every derived token metadata URL.
	MetadataBaseURL string `serialize:"true" json:"metadataBaseUrl"`

	// SupportedStandards are answered with Support unconditionally,
	// bypassing the implementor registry.
	SupportedStandards []types.StandardID `serialize:"true" json:"supportedStandards"`

	// OperatorTransfer selects the transfer policy. When true, a
	// per-owner operator may transfer the owner's tokens (the plain NFT
	// rule); when false only the owner may (the license rule).
	OperatorTransfer bool `serialize:"true" json:"operatorTransfer"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		MetadataBaseURL:    "https://web3id.backend.aesirx.io:8001/licenses/",
		SupportedStandards: []types.StandardID{"CIS-0", "CIS-2"},
		OperatorTransfer:   true,
	}
}

// Supported reports whether a standard is natively supported.
func (g *Genesis) Supported(id types.StandardID) bool {
	for _, s := range g.SupportedStandards {
		if s == id {
			return true
		}
	}
	return false
}
