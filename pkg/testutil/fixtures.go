package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestOwnerID1  = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestOwnerID2  = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestAccountID = uuid.MustParse("00000000-0000-0000-0000-000000000020")
	TestPlanID    = uuid.MustParse("00000000-0000-0000-0000-000000000030")
)
