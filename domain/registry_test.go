package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
)

func TestNewMemoryRegistry_Builtins(t *testing.T) {
	r := NewMemoryRegistry()

	require.Equal(t, len(Builtins()), r.Len())

	tests := []struct {
		id       format.ID
		name     string
		category format.Category
	}{
		{format.DomainVoid, "Void", format.CategoryVoid},
		{format.DomainInt32, "Int32", format.CategoryInt32},
		{format.DomainUInt32, "UInt32", format.CategoryUInt32},
		{format.DomainInt64, "Int64", format.CategoryInt64},
		{format.DomainFloat, "Float", format.CategoryFloat64},
		{format.DomainTime, "Time", format.CategoryTimestamp},
		{format.DomainShortText, "ShortText", format.CategoryShortText},
		{format.DomainText, "Text", format.CategoryText},
		{format.DomainLongText, "LongText", format.CategoryLongText},
		{format.DomainBool, "Bool", format.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := r.Resolve(tt.id)
			require.True(t, ok)
			require.Equal(t, tt.name, d.Name)
			require.Equal(t, tt.category, d.Category)

			byName, ok := r.Lookup(tt.name)
			require.True(t, ok)
			require.Equal(t, d, byName)
		})
	}
}

func TestMemoryRegistry_Resolve_Unknown(t *testing.T) {
	r := NewMemoryRegistry()

	_, ok := r.Resolve(format.NilID)
	require.False(t, ok)

	_, ok = r.Resolve(9999)
	require.False(t, ok)

	_, ok = r.Lookup("Missing")
	require.False(t, ok)
}

func TestMemoryRegistry_RegisterTable(t *testing.T) {
	r := NewMemoryRegistry()

	users, err := r.RegisterTable("Users", format.CategoryTableHashKey)
	require.NoError(t, err)
	require.Equal(t, format.ReservedDomainCount, users.ID)

	sites, err := r.RegisterTable("Sites", format.CategoryTablePatKey)
	require.NoError(t, err)
	require.Equal(t, format.ReservedDomainCount+1, sites.ID)

	got, ok := r.Resolve(sites.ID)
	require.True(t, ok)
	require.Equal(t, format.CategoryTablePatKey, got.Category)
	require.Equal(t, sites.ID, got.ObjectID())
}

func TestMemoryRegistry_RegisterTable_Errors(t *testing.T) {
	r := NewMemoryRegistry()

	_, err := r.RegisterTable("Numbers", format.CategoryInt32)
	require.ErrorIs(t, err, errs.ErrInvalidDomainName)

	_, err = r.RegisterTable("", format.CategoryTableNoKey)
	require.ErrorIs(t, err, errs.ErrInvalidDomainName)

	_, err = r.RegisterTable("Users", format.CategoryTableNoKey)
	require.NoError(t, err)
	_, err = r.RegisterTable("Users", format.CategoryTableNoKey)
	require.ErrorIs(t, err, errs.ErrDomainExists)

	_, err = r.RegisterTable("Text", format.CategoryTableNoKey)
	require.ErrorIs(t, err, errs.ErrDomainExists)
}

func TestMemoryRegistry_Register(t *testing.T) {
	r := NewMemoryRegistry()

	require.NoError(t, r.Register(Descriptor{ID: 1000, Name: "Remote", Category: format.CategoryTableNoKey}))

	// next generated id continues after the highest explicit id
	d, err := r.RegisterTable("Local", format.CategoryTableNoKey)
	require.NoError(t, err)
	require.Equal(t, format.ID(1001), d.ID)

	err = r.Register(Descriptor{ID: 1000, Name: "Other", Category: format.CategoryTableNoKey})
	require.ErrorIs(t, err, errs.ErrDomainExists)

	err = r.Register(Descriptor{ID: format.NilID, Name: "Nil"})
	require.ErrorIs(t, err, errs.ErrInvalidDomainName)
}

func TestMemoryRegistry_Names(t *testing.T) {
	r := NewMemoryRegistry()
	_, err := r.RegisterTable("Users", format.CategoryTableHashKey)
	require.NoError(t, err)

	names := r.Names()
	require.Equal(t, "Void", names[0])
	require.Equal(t, "Users", names[len(names)-1])

	// returned slice is a copy
	names[0] = "changed"
	require.Equal(t, "Void", r.Names()[0])
}

func TestMemoryRegistry_ConcurrentResolve(t *testing.T) {
	r := NewMemoryRegistry()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = r.RegisterTable("T"+string(rune('a'+i)), format.CategoryTableNoKey)
			}
			for range 100 {
				d, ok := r.Resolve(format.DomainInt32)
				if !ok || d.Category != format.CategoryInt32 {
					t.Errorf("unexpected descriptor %v", d)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, len(Builtins())+4, r.Len())
}

func TestDescriptor_String(t *testing.T) {
	d := Descriptor{ID: 256, Name: "Users", Category: format.CategoryTableHashKey}
	require.Equal(t, "Users(256:TableHashKey)", d.String())
}

func TestGet(t *testing.T) {
	r := NewMemoryRegistry()

	d, err := Get(r, format.DomainTime)
	require.NoError(t, err)
	require.Equal(t, "Time", d.Name)

	_, err = Get(r, 9999)
	require.ErrorIs(t, err, errs.ErrDomainNotFound)
}
