package postgres

func (s *RepositorySuite) TestInitializeStatsSeedsVersionAndCheckpoint() {
	s.Require().NoError(s.repo.InitializeStats(s.testCtx))

	version, found, err := s.repo.ReadStat(s.testCtx, statVersion)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(schemaVersion, version)

	checkpoint, found, err := s.repo.ReadStat(s.testCtx, statLastSyncBlock)
	s.Require().NoError(err)
	s.True(found)
	s.Empty(checkpoint)

	s.Require().NoError(s.repo.CheckVersion(s.testCtx))
}

func (s *RepositorySuite) TestInitializeStatsReplayAfterEarlyCrash() {
	// A crash between the seed and the first block leaves the blocks
	// table empty, so the next startup runs the seed again over the
	// existing rows.
	s.Require().NoError(s.repo.InitializeStats(s.testCtx))
	s.Require().NoError(s.repo.InitializeStats(s.testCtx))

	s.Equal(int64(2), s.countRows("stats"))
	s.Require().NoError(s.repo.CheckVersion(s.testCtx))
}

func (s *RepositorySuite) TestCheckpointProtocol() {
	s.Require().NoError(s.repo.InitializeStats(s.testCtx))

	b1 := blockID("a")
	s.seedBlock(b1, 1)
	s.flushLines(func(t *TrxContext) {
		s.repo.AdvanceCheckpoint(t, b1)
	})

	syncID, err := s.repo.CheckLastSyncBlock(s.testCtx)
	s.Require().NoError(err)
	s.Equal(b1, syncID)

	exists, err := s.repo.BlockExists(s.testCtx, b1)
	s.Require().NoError(err)
	s.True(exists)

	// A block flushed without its checkpoint advance is exactly the
	// crash divergence the startup check must refuse.
	b2 := blockID("b")
	s.seedBlock(b2, 2)

	_, err = s.repo.CheckLastSyncBlock(s.testCtx)
	s.Require().Error(err)

	var syncErr *SyncError
	s.Require().ErrorAs(err, &syncErr)
	s.Equal(b1, syncErr.SyncID)
	s.Equal(b2, syncErr.LatestID)

	latest, found, err := s.repo.LatestBlockID(s.testCtx)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(b2, latest)
}
