package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	anonymous := (*Caller)(nil)
	authenticated := &Caller{ID: 1}
	staff := &Caller{ID: 2, IsStaff: true}

	referenceResources := []Resource{
		ResourceStation, ResourceRoute, ResourceTrainType,
		ResourceTrain, ResourceCrew, ResourceJourney,
	}

	for _, resource := range referenceResources {
		assert.False(t, CanPerform(anonymous, ActionRead, resource))
		assert.False(t, CanPerform(anonymous, ActionWrite, resource))

		assert.True(t, CanPerform(authenticated, ActionRead, resource))
		assert.False(t, CanPerform(authenticated, ActionWrite, resource))

		assert.True(t, CanPerform(staff, ActionRead, resource))
		assert.True(t, CanPerform(staff, ActionWrite, resource))
	}

	// Any authenticated user may create and list orders; scoping to the
	// owner happens in the query.
	assert.False(t, CanPerform(anonymous, ActionRead, ResourceOrder))
	assert.False(t, CanPerform(anonymous, ActionWrite, ResourceOrder))
	assert.True(t, CanPerform(authenticated, ActionRead, ResourceOrder))
	assert.True(t, CanPerform(authenticated, ActionWrite, ResourceOrder))
	assert.True(t, CanPerform(staff, ActionWrite, ResourceOrder))
}

func TestSubjectID(t *testing.T) {
	id, err := subjectID(map[string]interface{}{"sub": "42"})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	id, err = subjectID(map[string]interface{}{"sub": float64(7)})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)

	_, err = subjectID(map[string]interface{}{"sub": "not-a-number"})
	assert.Error(t, err)

	_, err = subjectID(map[string]interface{}{})
	assert.Error(t, err)
}
