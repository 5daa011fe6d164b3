package keeper_test

import (
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

func (suite *KeeperTestSuite) TestParamsDefault() {
	params, err := suite.keeper.GetParams(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(types.DefaultParams(), params)
}

func (suite *KeeperTestSuite) TestSetParamsValidates() {
	err := suite.keeper.SetParams(suite.ctx, types.NewParams(types.PlatformFeeDenominator+1))
	suite.Require().ErrorIs(err, types.ErrInvalidParams)

	suite.Require().NoError(suite.keeper.SetParams(suite.ctx, types.NewParams(types.PlatformFeeDenominator)))
	params, err := suite.keeper.GetParams(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(types.PlatformFeeDenominator, params.PlatformFeeRate)
}

func (suite *KeeperTestSuite) TestUpdateParams() {
	update := types.MsgUpdateParams{Sender: manager, Params: types.NewParams(25_000)}

	err := suite.keeper.UpdateParams(suite.ctx, update)
	suite.Require().ErrorIs(err, types.ErrNotInitialized)

	_, err = suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().NoError(err)

	err = suite.keeper.UpdateParams(suite.ctx, types.MsgUpdateParams{Sender: creator, Params: update.Params})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	suite.Require().NoError(suite.keeper.UpdateParams(suite.ctx, update))
	params, err := suite.keeper.GetParams(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(25_000), params.PlatformFeeRate)
	suite.Require().True(suite.hasEvent(types.EventTypeParamsUpdated))
}

func (suite *KeeperTestSuite) TestInitMigrationKeepsStoredParams() {
	suite.Require().False(suite.keeper.HasParams(suite.ctx))
	suite.Require().NoError(suite.keeper.SetParams(suite.ctx, types.NewParams(0)))

	resp, err := suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().NoError(err)

	// no platform fee, so create_pair is the only message
	suite.Require().Len(resp.Messages, 1)
	suite.Require().Equal(uint64(1), resp.Messages[0].ID)
}
