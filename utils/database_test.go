package utils

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/utils/dotenv"
)

// Runs the temp-database lifecycle against a real postgres: create,
// migrate, seed, and drop on cleanup. Skipped when DB_HOST is unset so
// the suite stays runnable without one.
func TestCreateTempDB(t *testing.T) {
	require.NoError(t, dotenv.LoadDotEnvsInTests())
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set")
	}

	db, dbName := CreateTempDB(t)
	require.True(t, strings.HasPrefix(dbName, TestDBPrefix))

	var roles []model.Role
	require.NoError(t, db.Find(&roles).Error)
	require.Len(t, roles, 2)

	var org model.Organization
	require.NoError(t, db.First(&org, model.OrganizationID).Error)
	require.Equal(t, "Org name", org.Name)
}

func TestRandomTestDBName(t *testing.T) {
	name := randomTestDBName()
	require.True(t, isTempDB(name))
	require.Len(t, name, len(TestDBPrefix)+TestDBNameCharLength)
	require.NotEqual(t, name, randomTestDBName())
}
