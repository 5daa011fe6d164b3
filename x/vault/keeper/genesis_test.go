package keeper_test

import (
	"encoding/json"

	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	keepertest "github.com/Gelotto/cw-pampit-vault/testutil/keeper"
	"github.com/Gelotto/cw-pampit-vault/x/vault/plays"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

func (suite *KeeperTestSuite) TestExportDefaultGenesis() {
	genesis, err := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(types.DefaultGenesis(), genesis)
}

func (suite *KeeperTestSuite) TestGenesisRoundTripMidMigration() {
	_, err := suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().NoError(err)

	exported, err := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(exported.Validate())
	suite.Require().Len(exported.Pending, 1)

	k, ctx := keepertest.VaultKeeper(suite.T(), suite.querier, plays.DefaultPlays()...)
	suite.Require().NoError(k.InitGenesis(ctx, *exported))

	reexported, err := k.ExportGenesis(ctx)
	suite.Require().NoError(err)
	want, err := json.Marshal(exported)
	suite.Require().NoError(err)
	got, err := json.Marshal(reexported)
	suite.Require().NoError(err)
	suite.Require().JSONEq(string(want), string(got))

	// the imported vault finishes the migration
	resp, err := k.Reply(ctx, wasmvmtypes.Reply{ID: 1, Result: okResult})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Messages, 1)
	suite.Require().Equal(types.StatusComplete, k.GetStatus(ctx))

	// the next id continues after the imported counter
	id, err := k.NextReplyID(ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), id)
}

func (suite *KeeperTestSuite) TestInitGenesisRejectsInvalid() {
	genesis := types.DefaultGenesis()
	genesis.ReplyIDCounter = 4

	err := suite.keeper.InitGenesis(suite.ctx, *genesis)
	suite.Require().ErrorIs(err, types.ErrValidation)
	suite.Require().Zero(suite.keeper.GetReplyIDCounter(suite.ctx))
}
