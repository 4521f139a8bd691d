package postgresadapter

import (
	"encoding/json"

	"atelier/contexts/identity-access/authorization-service/domain/entities"
)

func assignmentPayload(assignment entities.RoleAssignment) ([]byte, error) {
	return json.Marshal(assignment)
}
