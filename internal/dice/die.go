package dice

// Face is one possible outcome of a die. Labels may repeat across faces.
type Face string

// Die is an immutable, named list of faces.
type Die struct {
	name  string
	faces []Face
}

func newDie(name string, faces ...Face) Die {
	return Die{name: name, faces: faces}
}

// Name returns the die's name, e.g. "chord".
func (d Die) Name() string { return d.name }

// Len returns the number of faces, counting repeats.
func (d Die) Len() int { return len(d.faces) }

// Faces returns a copy of the face list in definition order.
func (d Die) Faces() []Face {
	out := make([]Face, len(d.faces))
	copy(out, d.faces)
	return out
}

// Duration faces, longest to shortest.
const (
	Breve              Face = "breve"
	Semibreve          Face = "semibreve"
	Minim              Face = "minim"
	Crotchet           Face = "crotchet"
	Quaver             Face = "quaver"
	Semiquaver         Face = "semiquaver"
	Demisemiquaver     Face = "demisemiquaver"
	Hemidemisemiquaver Face = "hemidemisemiquaver"
)

// Chord face that carries no chord. It fills half the chord die.
const NoChord Face = "none"

var (
	Duration = newDie("duration",
		Breve, Semibreve, Minim, Crotchet,
		Quaver, Semiquaver, Demisemiquaver, Hemidemisemiquaver,
	)

	Augmentation = newDie("augmentation", "Dot", "No Dot")

	Pitch12 = newDie("pitch12",
		"C", "C#/Db", "D", "D#/Eb", "E", "F",
		"F#/Gb", "G", "G#/Ab", "A", "A#/Bb", "B",
	)

	// Odd indices are quarter tones: ⵐ half-sharp, ȸ and d half-flat, ⩨ sesquisharp.
	Pitch24 = newDie("pitch24",
		"C", "Cⵐ/Dȸ", "C#/Db", "C⩨/Dd",
		"D", "Dⵐ/Eȸ", "D#/Eb", "D⩨/Ed",
		"E", "Eⵐ/Fd",
		"F", "Fⵐ/Gȸ", "F#/Gb", "F⩨/Gd",
		"G", "Gⵐ/Aȸ", "G#/Ab", "G⩨/Ad",
		"A", "Aⵐ/Bȸ", "A#/Bb", "A⩨/Bd",
		"B", "Bⵐ/Cd",
	)

	Chord = newDie("chord",
		"maj", "min", "dim", "aug", "sus2", "sus4",
		"maj7", "min7", "7", "dim7", "aug7", "power",
		NoChord, NoChord, NoChord, NoChord, NoChord, NoChord,
		NoChord, NoChord, NoChord, NoChord, NoChord, NoChord,
	)
)

// AssetID names an image asset, resolved by the asset index.
type AssetID string

var durationAssets = map[Face]AssetID{
	Breve:              "breve.png",
	Semibreve:          "semibreve.png",
	Minim:              "minim.png",
	Crotchet:           "crotchet.png",
	Quaver:             "quaver.png",
	Semiquaver:         "semiquaver.png",
	Demisemiquaver:     "demisemiquaver.png",
	Hemidemisemiquaver: "hemidemisemiquaver.png",
}

// ImageAssetFor returns the image asset for a duration face.
// It reports false only for faces that are not on the Duration die.
func ImageAssetFor(f Face) (AssetID, bool) {
	id, ok := durationAssets[f]
	return id, ok
}
