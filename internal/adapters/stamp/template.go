package stamp

import (
	"bytes"
	"strconv"
	"text/template"

	"go.trai.ch/hpwbuild/internal/core/domain"
)

var sourceTemplate = template.Must(template.New("version.cpp").
	Funcs(template.FuncMap{"cstring": strconv.Quote}).
	Parse(`// Generated by hpwbuild. Do not edit.
#include "game/util/version.hpp"

const char* get_game_version() { return {{ cstring .Stamp.String }}; }
`))

// Render returns the C++ source that exposes stamp to the game.
func Render(stamp domain.VersionStamp) ([]byte, error) {
	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, struct{ Stamp domain.VersionStamp }{stamp}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
