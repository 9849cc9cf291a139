package memory_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ecem/goodworks/internal/storage"
	"github.com/ecem/goodworks/internal/storage/memory"
	"github.com/ecem/goodworks/internal/storage/storagetest"
)

func TestMemoryStoreContract(t *testing.T) {
	suite.Run(t, &storagetest.Suite{
		NewStore: func(t *testing.T) storage.Store {
			return memory.New()
		},
	})
}
