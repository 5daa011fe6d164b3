package keeper_test

import (
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Gelotto/cw-pampit-vault/x/vault/keeper"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

func (suite *KeeperTestSuite) TestMigrationMetrics() {
	m := keeper.NewVaultMetrics()
	started := m.MigrationsTotal.WithLabelValues(types.PlayInitAstroportPair, types.StatusPairCreationPending.String())
	replied := m.RepliesTotal.WithLabelValues("astroport_create_pair", types.StatusComplete.String())
	startedBefore := testutil.ToFloat64(started)
	repliedBefore := testutil.ToFloat64(replied)
	pendingBefore := testutil.ToFloat64(m.PendingContinuations)

	_, err := suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().NoError(err)
	suite.Require().Equal(startedBefore+1, testutil.ToFloat64(started))
	suite.Require().Equal(pendingBefore+1, testutil.ToFloat64(m.PendingContinuations))

	_, err = suite.keeper.Reply(suite.ctx, replyOK(1))
	suite.Require().NoError(err)
	suite.Require().Equal(repliedBefore+1, testutil.ToFloat64(replied))
	suite.Require().Equal(pendingBefore, testutil.ToFloat64(m.PendingContinuations))
}
