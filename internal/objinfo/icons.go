// Package objinfo annotates navigation entries that point at indexed API
// objects with an icon and a tooltip describing the object.
package objinfo

// IconKey identifies an icon by content domain and object type.
type IconKey struct {
	Domain string
	Type   string
}

// IconInfo describes the nav icon for one object type: a style suffix for
// the icon's css class and a single-character glyph from the icon font.
type IconInfo struct {
	Class string
	Text  string
}

// Icons maps (domain, object type) pairs to their nav icon. Pairs not listed
// here are never annotated.
var Icons = map[IconKey]IconInfo{
	{"std", "envvar"}: {Class: "alias", Text: "$"},

	{"js", "module"}:    {Class: "data", Text: "r"},
	{"js", "function"}:  {Class: "procedure", Text: "M"},
	{"js", "method"}:    {Class: "procedure", Text: "M"},
	{"js", "class"}:     {Class: "data", Text: "C"},
	{"js", "data"}:      {Class: "alias", Text: "V"},
	{"js", "attribute"}: {Class: "alias", Text: "V"},

	{"json", "schema"}:    {Class: "data", Text: "J"},
	{"json", "subschema"}: {Class: "sub-data", Text: "j"},

	{"py", "class"}:        {Class: "data", Text: "C"},
	{"py", "function"}:     {Class: "procedure", Text: "F"},
	{"py", "method"}:       {Class: "procedure", Text: "M"},
	{"py", "classmethod"}:  {Class: "procedure", Text: "M"},
	{"py", "staticmethod"}: {Class: "procedure", Text: "M"},
	{"py", "property"}:     {Class: "alias", Text: "P"},
	{"py", "attribute"}:    {Class: "alias", Text: "A"},
	{"py", "data"}:         {Class: "alias", Text: "V"},
	{"py", "parameter"}:    {Class: "sub-data", Text: "p"},

	{"c", "member"}:     {Class: "alias", Text: "V"},
	{"c", "var"}:        {Class: "alias", Text: "V"},
	{"c", "function"}:   {Class: "procedure", Text: "F"},
	{"c", "macro"}:      {Class: "alias", Text: "D"},
	{"c", "union"}:      {Class: "data", Text: "U"},
	{"c", "struct"}:     {Class: "data", Text: "S"},
	{"c", "enum"}:       {Class: "data", Text: "E"},
	{"c", "enumerator"}: {Class: "data", Text: "e"},
	{"c", "type"}:       {Class: "alias", Text: "T"},

	{"cpp", "class"}:       {Class: "data", Text: "C"},
	{"cpp", "struct"}:      {Class: "data", Text: "S"},
	{"cpp", "enum"}:        {Class: "data", Text: "E"},
	{"cpp", "enum-class"}:  {Class: "data", Text: "E"},
	{"cpp", "enum-struct"}: {Class: "data", Text: "E"},
	{"cpp", "enumerator"}:  {Class: "data", Text: "e"},
	{"cpp", "union"}:       {Class: "data", Text: "U"},
	{"cpp", "concept"}:     {Class: "data", Text: "t"},
	{"cpp", "function"}:    {Class: "procedure", Text: "F"},
	{"cpp", "alias"}:       {Class: "procedure", Text: "F"},
	{"cpp", "member"}:      {Class: "alias", Text: "V"},
	{"cpp", "var"}:         {Class: "alias", Text: "V"},
	{"cpp", "type"}:        {Class: "alias", Text: "T"},
	{"cpp", "namespace"}:   {Class: "alias", Text: "N"},
}
