package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Casa Roble", "casa-roble"},
		{"diacritics", "Remodelación Edificio Histórico", "remodelacion-edificio-historico"},
		{"enie", "Casa Ñandú", "casa-nandu"},
		{"punctuation runs", "  Plaza -- Comercial!!  Norte ", "plaza-comercial-norte"},
		{"digits", "Torre 2024", "torre-2024"},
		{"upper accents", "ÉPOCA", "epoca"},
		{"symbols only", "¡¿?!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{"casa-roble": true, "casa-roble-1": true}
	isTaken := func(s string) bool { return taken[s] }

	assert.Equal(t, "casa-roble-2", uniqueSlug("Casa Roble", isTaken))
	assert.Equal(t, "bodega", uniqueSlug("Bodega", isTaken))
	assert.Equal(t, "proyecto", uniqueSlug("!!!", isTaken))

	taken["proyecto"] = true
	assert.Equal(t, "proyecto-1", uniqueSlug("", isTaken))
}
