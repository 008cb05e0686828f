package address_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtransport/pkg/address"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     address.Address
		want   string
		wantOK bool
	}{
		{"name and address", address.Address{Name: "X", Address: "a@b.com"}, "X <a@b.com>", true},
		{"empty name", address.Address{Address: "a@b.com"}, "a@b.com", true},
		{"missing address", address.Address{Name: "Bcc4"}, "", false},
		{"empty object", address.Address{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := address.Format(tt.in)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_String(t *testing.T) {
	t.Parallel()

	t.Run("returned unchanged", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "from@bar.com", address.Normalize(address.String("from@bar.com")))
	})

	t.Run("pre-formatted display name kept", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, `"Doe, J" <j@bar.com>`, address.Normalize(address.String(`"Doe, J" <j@bar.com>`)))
	})

	t.Run("empty string stays empty", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", address.Normalize(address.String("")))
	})
}

func TestNormalize_Object(t *testing.T) {
	t.Parallel()

	require.Equal(t, "From <from@bar.com>",
		address.Normalize(address.Object(address.Address{Name: "From", Address: "from@bar.com"})))
	require.Equal(t, "from@bar.com",
		address.Normalize(address.Object(address.Address{Address: "from@bar.com"})))
	require.Equal(t, "",
		address.Normalize(address.Object(address.Address{Name: "Nobody"})))
}

func TestNormalize_List(t *testing.T) {
	t.Parallel()

	t.Run("strings joined without spaces", func(t *testing.T) {
		t.Parallel()
		got := address.Normalize(address.Strings("to@bar.com", "to1@bar.com"))
		require.Equal(t, "to@bar.com,to1@bar.com", got)
	})

	t.Run("objects with missing data skipped", func(t *testing.T) {
		t.Parallel()
		got := address.Normalize(address.List(
			address.Named("To", "to@bar.com"),
			address.Bare("to2@bar.com"),
			address.Bare("to3@bar.com"),
			address.Named("", ""),
		))
		require.Equal(t, "To <to@bar.com>,to2@bar.com,to3@bar.com", got)
	})

	t.Run("name without address skipped", func(t *testing.T) {
		t.Parallel()
		got := address.Normalize(address.List(
			address.Named("Bcc", "bcc@bar.com"),
			address.Named("Bcc4", ""),
		))
		require.Equal(t, "Bcc <bcc@bar.com>", got)
	})

	t.Run("mixed strings and objects keep order", func(t *testing.T) {
		t.Parallel()
		got := address.Normalize(address.List(
			address.Raw("a@bar.com"),
			address.Named("B", "b@bar.com"),
			address.Raw(""),
			address.Raw("c@bar.com"),
		))
		require.Equal(t, "a@bar.com,B <b@bar.com>,c@bar.com", got)
	})

	t.Run("nothing survives", func(t *testing.T) {
		t.Parallel()
		got := address.Normalize(address.List(address.Bare(""), address.Raw("")))
		require.Equal(t, "", got)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", address.Normalize(address.List()))
	})
}

func TestNormalize_None(t *testing.T) {
	t.Parallel()

	var v address.Value
	require.True(t, v.IsZero())
	require.Equal(t, address.KindNone, v.Kind())
	require.Equal(t, "", address.Normalize(v))
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	v := address.Objects(
		address.Address{Name: "Cc", Address: "cc@bar.com"},
		address.Address{Address: "cc2@bar.com"},
	)

	first := address.Normalize(v)
	second := address.Normalize(v)
	require.Equal(t, first, second)
	require.Equal(t, "Cc <cc@bar.com>,cc2@bar.com", first)
}

func TestList_CopiesEntries(t *testing.T) {
	t.Parallel()

	entries := []address.Entry{address.Raw("a@bar.com"), address.Raw("b@bar.com")}
	v := address.List(entries...)
	entries[0] = address.Raw("changed@bar.com")

	require.Equal(t, "a@bar.com,b@bar.com", address.Normalize(v))
}

func TestValue_Entries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   address.Value
		want []string
	}{
		{"none", address.Value{}, nil},
		{"string", address.String("a@bar.com"), []string{"a@bar.com"}},
		{"empty string", address.String(""), nil},
		{"object", address.Object(address.Address{Name: "A", Address: "a@bar.com"}), []string{"A <a@bar.com>"}},
		{"object without address", address.Object(address.Address{Name: "A"}), nil},
		{
			"list",
			address.List(address.Named("A", "a@bar.com"), address.Bare(""), address.Raw("b@bar.com")),
			[]string{"A <a@bar.com>", "b@bar.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.in.Entries()
			if tt.want == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "none", address.KindNone.String())
	require.Equal(t, "string", address.KindString.String())
	require.Equal(t, "object", address.KindObject.String())
	require.Equal(t, "list", address.KindList.String())
}
