package fhestrings_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo-strings/fhestrings"
)

func TestEqNoInitPadding(t *testing.T) {
	eval := fhestrings.NewEvaluator(fhestrings.ClearEvaluator{})

	s1 := fhestrings.EncryptClear([]byte("bd"), fhestrings.PaddingFinal, fhestrings.ClearLength(2))
	s2 := fhestrings.EncryptClear([]byte{'b', 'd', 0}, fhestrings.PaddingFinal, fhestrings.ClearLength(2))
	s3 := fhestrings.EncryptClear([]byte{'b', 'd', 'e'}, fhestrings.PaddingNone, fhestrings.ClearLength(3))

	require.True(t, fhestrings.DecodeBool(eval.EqNoInitPadding(s1, s2)))
	require.False(t, fhestrings.DecodeBool(eval.EqNoInitPadding(s1, s3)))
}

func TestEqClearNoInitPadding(t *testing.T) {
	eval := fhestrings.NewEvaluator(fhestrings.ClearEvaluator{})

	s := fhestrings.EncryptClear([]byte{'b', 'd', 0}, fhestrings.PaddingFinal, fhestrings.ClearLength(2))

	require.True(t, fhestrings.DecodeBool(eval.EqClearNoInitPadding(s, []byte("bd"))))
	require.False(t, fhestrings.DecodeBool(eval.EqClearNoInitPadding(s, []byte("bde"))))
	require.False(t, fhestrings.DecodeBool(eval.EqClearNoInitPadding(s, []byte("bdef"))))
}

func TestStartsWithEncryptedNoInitPadding(t *testing.T) {
	eval := fhestrings.NewEvaluator(fhestrings.ClearEvaluator{})

	s := fhestrings.EncryptClear([]byte{'b', 'c'}, fhestrings.PaddingNone, fhestrings.ClearLength(2))
	prefix := fhestrings.EncryptClear([]byte{'b', 0}, fhestrings.PaddingFinal, fhestrings.ClearLength(1))
	notPrefix := fhestrings.EncryptClear([]byte{'d'}, fhestrings.PaddingNone, fhestrings.ClearLength(1))

	require.True(t, fhestrings.DecodeBool(eval.StartsWithEncryptedNoInitPadding(s, prefix)))
	require.False(t, fhestrings.DecodeBool(eval.StartsWithEncryptedNoInitPadding(s, notPrefix)))
}

func TestStartsWithClearNoInitPadding(t *testing.T) {
	eval := fhestrings.NewEvaluator(fhestrings.ClearEvaluator{})

	s := fhestrings.EncryptClear([]byte{'b', 'c'}, fhestrings.PaddingNone, fhestrings.ClearLength(2))

	for _, tc := range []struct {
		prefix string
		want   bool
	}{
		{"", true},
		{"b", true},
		{"bc", true},
		{"d", false},
	} {
		got := fhestrings.DecodeBool(eval.StartsWithClearNoInitPadding(s, []byte(tc.prefix)))
		require.Equal(t, tc.want, got, "prefix %q", tc.prefix)
	}
}

func TestCompareNoInitPadding(t *testing.T) {
	eval := fhestrings.NewEvaluator(fhestrings.ClearEvaluator{})

	s1 := fhestrings.EncryptClear([]byte("cde"), fhestrings.PaddingNone, fhestrings.ClearLength(3))
	s2 := fhestrings.EncryptClear([]byte("ce"), fhestrings.PaddingNone, fhestrings.ClearLength(2))

	require.True(t, fhestrings.DecodeBool(eval.CompareNoInitPadding(s1, s2, fhestrings.OpLess)))
	require.False(t, fhestrings.DecodeBool(eval.CompareNoInitPadding(s1, s2, fhestrings.OpGreater)))

	sEq := fhestrings.EncryptClear([]byte("cde"), fhestrings.PaddingNone, fhestrings.ClearLength(3))
	require.True(t, fhestrings.DecodeBool(eval.CompareNoInitPadding(s1, sEq, fhestrings.OpLess)))
	require.True(t, fhestrings.DecodeBool(eval.CompareNoInitPadding(s1, sEq, fhestrings.OpGreater)))
}

func TestCompareClearNoInitPadding(t *testing.T) {
	eval := fhestrings.NewEvaluator(fhestrings.ClearEvaluator{})

	s := fhestrings.EncryptClear([]byte{'b', 'd', 0}, fhestrings.PaddingFinal, fhestrings.ClearLength(2))

	require.True(t, fhestrings.DecodeBool(eval.CompareClearNoInitPadding(s, []byte("bd"), fhestrings.OpLess)))
	require.True(t, fhestrings.DecodeBool(eval.CompareClearNoInitPadding(s, []byte("ada"), fhestrings.OpGreater)))
	require.False(t, fhestrings.DecodeBool(eval.CompareClearNoInitPadding(s, []byte("bc"), fhestrings.OpLess)))
}
