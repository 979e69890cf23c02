package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	require.Equal(t, "0", Int(0))
	require.Equal(t, "999", Int(999))
	require.Equal(t, "1.234", Int(1234))
	require.Equal(t, "1.234.567", Int(1234567))
}

func TestIntPtr(t *testing.T) {
	n := int64(12000)
	require.Equal(t, "12.000", IntPtr(&n))
	require.Equal(t, "-", IntPtr(nil))
}

func TestPercent(t *testing.T) {
	require.Equal(t, "33.3", Percent(1, 3))
	require.Equal(t, "66.7", Percent(2, 3))
	require.Equal(t, "100.0", Percent(5, 5))
	require.Equal(t, "0.0", Percent(5, 0))
}

func TestText(t *testing.T) {
	s := "Ministério da Saúde"
	blank := "  "
	require.Equal(t, s, Text(&s))
	require.Equal(t, "-", Text(&blank))
	require.Equal(t, "-", Text(nil))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "curto", Truncate("curto", 30))
	require.Equal(t, "Ministério...", Truncate("Ministério da Educação", 10))
}

func TestFold(t *testing.T) {
	require.Equal(t, "ministerio da educacao", Fold("  Ministério da Educação "))
	require.Equal(t, "orgao", Fold("ÓRGÃO"))
	require.Equal(t, "", Fold("\xff"))
	require.Equal(t, "saude", Fold("Sa\xffúde"))
}
