package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"phpgen/internal/model"
	"phpgen/internal/render"
)

const sampleDefinitions = `
namespace: App\Entity
uses:
  - name: App\Support\Identifiable
classes:
  - name: User
    kind: class
    final: true
    comment: Application user.
    extends: App\Entity\Model\Base
    implements: [Countable]
    traits:
      - name: App\Support\Identifiable
        resolutions:
          - Identifiable::id as identifier
    constants:
      - name: ROLE_ADMIN
        value: admin
        visibility: public
    properties:
      - name: email
        visibility: private
      - name: loginCount
        value: 0
        visibility: private
    methods:
      - name: getEmail
        returnType: string
        body: return $this->email;
  - name: Repository
    kind: interface
    extends:
      - Countable
      - IteratorAggregate
    methods:
      - name: find
        params:
          - name: id
            type: int
`

func TestParseBuildsModels(t *testing.T) {
	p := New()
	res, err := p.Parse([]byte(sampleDefinitions))
	require.NoError(t, err)

	require.NotNil(t, res.Namespace)
	assert.Equal(t, `App\Entity`, res.Namespace.Name())
	require.Len(t, res.Classes, 2)

	user := res.Classes[0]
	assert.Equal(t, "User", user.Name())
	assert.Equal(t, model.KindClass, user.Kind())
	assert.True(t, user.IsFinal())
	assert.Equal(t, []string{`App\Entity\Model\Base`}, user.Extends().List())
	assert.False(t, user.Extends().IsMultiple(), "scalar extends stays single")

	email, err := user.GetProperty("email")
	require.NoError(t, err)
	assert.Nil(t, email.Value())

	count, err := user.GetProperty("loginCount")
	require.NoError(t, err)
	assert.Equal(t, 0, count.Value())

	repo := res.Classes[1]
	assert.Equal(t, model.KindInterface, repo.Kind())
	assert.True(t, repo.Extends().IsMultiple(), "sequence extends becomes the list variant")

	find, err := repo.GetMethod("find")
	require.NoError(t, err)
	assert.False(t, find.HasBody())
}

func TestParseRendersExpectedSource(t *testing.T) {
	p := New()
	res, err := p.Parse([]byte(sampleDefinitions))
	require.NoError(t, err)

	out := render.Class(res.Classes[0], nil)
	assert.Contains(t, out, "final class User extends Model\\Base implements Countable")
	assert.Contains(t, out, "use Identifiable {")
	assert.Contains(t, out, "\t\tIdentifiable::id as identifier;")
	assert.Contains(t, out, "public const ROLE_ADMIN = 'admin';")
	assert.Contains(t, out, "private $email;")
	assert.Contains(t, out, "private $loginCount = 0;")
	assert.Contains(t, out, "public function getEmail(): string")

	iface := render.Class(res.Classes[1], nil)
	assert.Contains(t, iface, "interface Repository extends Countable, IteratorAggregate")
	assert.Contains(t, iface, "function find(int $id);")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDefinitions), 0o644))

	res, err := New().ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, res.Classes, 2)

	_, err = New().ParseFile(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		contains   string
		validation bool
	}{
		{
			name:       "invalid class name",
			input:      "classes:\n  - name: 1Bad\n",
			contains:   "1Bad",
			validation: true,
		},
		{
			name:       "invalid kind",
			input:      "classes:\n  - name: Ok\n    kind: enum\n",
			contains:   "enum",
			validation: true,
		},
		{
			name:       "invalid visibility",
			input:      "classes:\n  - name: Ok\n    properties:\n      - name: x\n        visibility: internal\n",
			contains:   "internal",
			validation: true,
		},
		{
			name:       "invalid extend",
			input:      "classes:\n  - name: Ok\n    extends: 'not a name!'\n",
			contains:   "not a name!",
			validation: true,
		},
		{
			name:       "invalid use target",
			input:      "uses:\n  - name: '9Bad'\n",
			contains:   "9Bad",
			validation: true,
		},
		{
			name:     "extends wrong node kind",
			input:    "classes:\n  - name: Ok\n    extends:\n      key: value\n",
			contains: "expected a string or a list of strings",
		},
		{
			name:     "not yaml",
			input:    "\t{nope",
			contains: "decoding definition file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			if tt.validation {
				assert.True(t, errors.Is(err, model.ErrValidation))
			}
		})
	}
}

func TestStringListForms(t *testing.T) {
	var f File
	require.NoError(t, yaml.Unmarshal([]byte("classes:\n  - name: A\n    extends: Base\n"), &f))
	assert.Equal(t, StringList{"Base"}, f.Classes[0].Extends)

	var f2 File
	require.NoError(t, yaml.Unmarshal([]byte("classes:\n  - name: A\n    extends: [Base, Other]\n"), &f2))
	assert.Equal(t, StringList{"Base", "Other"}, f2.Classes[0].Extends)
}
