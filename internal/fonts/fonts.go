package fonts

import (
	"fmt"
	"os"
	"path/filepath"

	"chance-dice/internal/segment"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Size is a point size class used on the dice panels.
type Size int

const (
	SizeCaption Size = 20
	SizeValue   Size = 40
)

// DPI for all faces. At 72 DPI one point is one canvas unit.
const DPI = 72

// Files names the font file for each role inside a fonts directory.
type Files struct {
	Default  string
	Phonetic string
	Math     string
}

// DefaultFiles are the Noto families the panels were designed around.
var DefaultFiles = Files{
	Default:  "NotoSans-Bold.ttf",
	Phonetic: "NotoSansTifinagh-Regular.ttf",
	Math:     "NotoSansMath-Regular.ttf",
}

type faceKey struct {
	role segment.Role
	size Size
}

// Set holds one face per (role, size). Faces are not safe for concurrent
// use; give each goroutine its own Set.
type Set struct {
	faces map[faceKey]font.Face
}

// Load parses the role fonts from dir. A role whose file is missing or
// unreadable falls back to the embedded Go Bold face and logs a warning.
// An empty dir uses the embedded face for every role.
func Load(dir string, files Files, log *zap.SugaredLogger) (*Set, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	fallback, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse embedded face: %w", err)
	}

	byRole := map[segment.Role]string{
		segment.RoleDefault:  files.Default,
		segment.RolePhonetic: files.Phonetic,
		segment.RoleMath:     files.Math,
	}

	parsed := make(map[segment.Role]*opentype.Font, len(byRole))
	for role, name := range byRole {
		parsed[role] = fallback
		if dir == "" || name == "" {
			continue
		}
		path := filepath.Join(dir, name)
		f, err := parseFile(path)
		if err != nil {
			kv := []any{"role", role.String(), "path", path, "error", err}
			if role != segment.RoleDefault {
				// The embedded face has no glyphs for these; they draw as boxes.
				kv = append(kv, "missing_glyphs", segment.Specials(role))
			}
			log.Warnw("font unavailable, using embedded face", kv...)
			continue
		}
		parsed[role] = f
	}

	s := &Set{faces: make(map[faceKey]font.Face)}
	for role, f := range parsed {
		for _, size := range []Size{SizeCaption, SizeValue} {
			face, err := opentype.NewFace(f, &opentype.FaceOptions{
				Size:    float64(size),
				DPI:     DPI,
				Hinting: font.HintingFull,
			})
			if err != nil {
				s.Close()
				return nil, fmt.Errorf("fonts: face %s@%d: %w", role, size, err)
			}
			s.faces[faceKey{role, size}] = face
		}
	}
	return s, nil
}

// Embedded returns a Set that uses the embedded Go Bold face for every role.
func Embedded() (*Set, error) {
	return Load("", Files{}, nil)
}

func parseFile(path string) (*opentype.Font, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Face returns the face for a role and size. Unknown roles get the default face.
func (s *Set) Face(role segment.Role, size Size) font.Face {
	if f, ok := s.faces[faceKey{role, size}]; ok {
		return f
	}
	return s.faces[faceKey{segment.RoleDefault, size}]
}

// Measure returns the advance width of text in canvas units.
func (s *Set) Measure(role segment.Role, size Size, text string) float64 {
	return toFloat(font.MeasureString(s.Face(role, size), text))
}

// Metrics returns the ascent and descent of a face in canvas units.
func (s *Set) Metrics(role segment.Role, size Size) (ascent, descent float64) {
	m := s.Face(role, size).Metrics()
	return toFloat(m.Ascent), toFloat(m.Descent)
}

// Close releases all faces.
func (s *Set) Close() error {
	for _, f := range s.faces {
		f.Close()
	}
	return nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
