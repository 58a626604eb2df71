package gen

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetForDefaults(t *testing.T) {
	o := &Options{}
	require.NoError(t, o.hydrate())
	tgt := o.TargetFor("user_profiles")
	assert.Equal(t, "UserProfiles", tgt.ClassName)
	assert.Equal(t, "UserProfiles.php", tgt.FileName)
	assert.Equal(t, DefaultNamespace, tgt.Namespace)
	abs, err := filepath.Abs(DefaultFolder)
	require.NoError(t, err)
	assert.Equal(t, abs+"/UserProfiles.php", tgt.FilePath)
}

func TestTargetForSingular(t *testing.T) {
	o := &Options{Singular: true}
	require.NoError(t, o.hydrate())
	assert.Equal(t, "UserProfile", o.TargetFor("user_profiles").ClassName)
	assert.Equal(t, "Order", o.TargetFor("orders").ClassName)
}

func TestTargetForFolderDerivedNamespace(t *testing.T) {
	o := &Options{Folder: Name("src/Data/Models")}
	require.NoError(t, o.hydrate())
	tgt := o.TargetFor("users")
	assert.Equal(t, `src\Data\Models`, tgt.Namespace)
	assert.True(t, strings.HasSuffix(tgt.FilePath, "/src/Data/Models/Users.php"), tgt.FilePath)
}

func TestTargetForNamespaceOverride(t *testing.T) {
	o := &Options{
		Folder:    Name("src/Data/Models"),
		Namespace: Name(`Custom\Models`),
	}
	require.NoError(t, o.hydrate())
	assert.Equal(t, `Custom\Models`, o.TargetFor("users").Namespace)
}

func TestTargetForGeneratorFunctions(t *testing.T) {
	o := &Options{
		Folder:    NameFunc(func(table string) string { return "/out/" + table }),
		Filename:  NameFunc(func(table string) string { return "Gen" + Studly(table) }),
		Namespace: NameFunc(func(folder string) string { return "Ns" + folder }),
	}
	require.NoError(t, o.hydrate())
	tgt := o.TargetFor("users")
	assert.Equal(t, "GenUsers", tgt.ClassName)
	assert.Equal(t, "/out/users/GenUsers.php", tgt.FilePath)
	assert.Equal(t, "Ns/out/users", tgt.Namespace)
}

func TestTargetForFilenameLiteral(t *testing.T) {
	o := &Options{Filename: Name("BaseModel")}
	require.NoError(t, o.hydrate())
	tgt := o.TargetFor("users")
	assert.Equal(t, "BaseModel", tgt.ClassName)
	assert.Equal(t, "BaseModel.php", tgt.FileName)
}

func TestTargetForDeterministic(t *testing.T) {
	o := &Options{Folder: Name("app/Models"), Singular: true}
	require.NoError(t, o.hydrate())
	a := o.TargetFor("user_profiles")
	b := o.TargetFor("user_profiles")
	assert.Equal(t, a, b)
}
