// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Normalized claim types.
const (
	ClaimRole   = "role"
	ClaimNameID = "nameid"
	ClaimName   = "name"
)

// Long-form claim type URIs some issuers emit instead of the short names.
const (
	RoleClaimURI           = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	NameIdentifierClaimURI = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	NameClaimURI           = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
)

var claimAliases = map[string]string{
	"role":                 ClaimRole,
	"roles":                ClaimRole,
	RoleClaimURI:           ClaimRole,
	"sub":                  ClaimNameID,
	"nameid":               ClaimNameID,
	NameIdentifierClaimURI: ClaimNameID,
	"unique_name":          ClaimName,
	"name":                 ClaimName,
	NameClaimURI:           ClaimName,
}

// Claim is one normalized type/value pair.
type Claim struct {
	Type  string
	Value string
}

// normalizeClaims flattens raw token claims into a list. Known aliases are
// renamed, array values expand into one claim per element and the rest pass
// through unchanged. Keys are visited in sorted order so the result is
// stable.
func normalizeClaims(raw jwt.MapClaims) []Claim {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	claims := make([]Claim, 0, len(raw))
	for _, key := range keys {
		claimType := key
		if alias, ok := claimAliases[key]; ok {
			claimType = alias
		}

		for _, value := range claimValues(raw[key]) {
			claims = append(claims, Claim{Type: claimType, Value: value})
		}
	}

	return claims
}

func claimValues(v any) []string {
	switch value := v.(type) {
	case nil:
		return nil
	case []any:
		values := make([]string, 0, len(value))
		for _, item := range value {
			values = append(values, claimValues(item)...)
		}
		return values
	case string:
		return []string{value}
	case float64:
		return []string{strconv.FormatFloat(value, 'f', -1, 64)}
	case bool:
		return []string{strconv.FormatBool(value)}
	case json.Number:
		return []string{value.String()}
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return []string{fmt.Sprint(value)}
		}
		return []string{string(encoded)}
	}
}
