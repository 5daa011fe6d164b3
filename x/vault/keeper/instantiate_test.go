package keeper_test

import (
	"encoding/json"

	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	keepertest "github.com/Gelotto/cw-pampit-vault/testutil/keeper"
	"github.com/Gelotto/cw-pampit-vault/x/vault/integrations/astroport"
	"github.com/Gelotto/cw-pampit-vault/x/vault/integrations/dojoswap"
	"github.com/Gelotto/cw-pampit-vault/x/vault/plays"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

func (suite *KeeperTestSuite) hasEvent(eventType string) bool {
	for _, ev := range suite.ctx.EventManager().Events() {
		if ev.Type == eventType {
			return true
		}
	}
	return false
}

func (suite *KeeperTestSuite) TestAstroportMigration() {
	resp, err := suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().NoError(err)
	suite.Require().Len(resp.Messages, 2)
	suite.Require().Contains(resp.Attributes, wasmvmtypes.EventAttribute{Key: types.AttributeKeyAction, Value: "instantiate"})

	fee, create := resp.Messages[0], resp.Messages[1]
	suite.Require().Equal(wasmvmtypes.Coins{{Denom: "uinj", Amount: "10000000"}}, fee.Msg.Bank.Send.Amount)
	suite.Require().Equal(uint64(1), create.ID)
	suite.Require().Equal(astroport.DefaultFactoryAddress, create.Msg.Wasm.Execute.ContractAddr)
	suite.Require().True(suite.keeper.HasContinuation(suite.ctx, 1))
	suite.Require().Equal(types.StatusPairCreationPending, suite.keeper.GetStatus(suite.ctx))
	suite.Require().True(suite.hasEvent(types.EventTypeMigrationStarted))

	cfg, err := suite.keeper.GetConfig(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(manager, cfg.Manager)
	suite.Require().Equal(creator, cfg.CreatedBy)
	suite.Require().True(keepertest.GenesisTime.Equal(cfg.CreatedAt))
	suite.Require().Equal("1000000000", cfg.InitialQuote.Amount.String())

	resp, err = suite.keeper.Reply(suite.ctx, wasmvmtypes.Reply{ID: create.ID, Result: okResult})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Messages, 1)
	suite.Require().Equal(pairAddr, resp.Messages[0].Msg.Wasm.Execute.ContractAddr)
	suite.Require().Contains(resp.Attributes, wasmvmtypes.EventAttribute{Key: types.AttributeKeyPairAddress, Value: pairAddr})
	suite.Require().True(suite.hasEvent(types.EventTypePairCreated))

	var provide astroport.PairExecuteMsg
	suite.Require().NoError(json.Unmarshal(resp.Messages[0].Msg.Wasm.Execute.Msg, &provide))
	suite.Require().NotNil(provide.ProvideLiquidity)
	suite.Require().Equal(suite.keeper.ContractAddress(), *provide.ProvideLiquidity.Receiver)

	addr, err := suite.keeper.QueryPairAddress(suite.ctx, plays.ExchangeAstroport)
	suite.Require().NoError(err)
	suite.Require().Equal(pairAddr, addr)
	suite.Require().Equal(types.StatusComplete, suite.keeper.GetStatus(suite.ctx))

	pending, err := suite.keeper.QueryPending(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Empty(pending)

	// the host delivering the same reply again
	_, err = suite.keeper.Reply(suite.ctx, wasmvmtypes.Reply{ID: create.ID, Result: okResult})
	suite.Require().ErrorIs(err, types.ErrUnknownCorrelationID)
}

func (suite *KeeperTestSuite) TestDojoswapMigration() {
	suite.querier.SetResponse(dojoswap.DefaultFactoryAddress, dojoswap.PairInfo{ContractAddr: pairAddr})

	msg := astroportMsg()
	msg.Play = types.PlayInitDojoswapPair
	resp, err := suite.keeper.InitMigration(suite.ctx, creator, msg)
	suite.Require().NoError(err)
	suite.Require().Len(resp.Messages, 2)

	resp, err = suite.keeper.Reply(suite.ctx, wasmvmtypes.Reply{ID: resp.Messages[1].ID, Result: okResult})
	suite.Require().NoError(err)
	suite.Require().Empty(resp.Messages)
	suite.Require().Equal(types.StatusComplete, suite.keeper.GetStatus(suite.ctx))

	addr, ok := suite.keeper.GetPairAddress(suite.ctx, plays.ExchangeDojoswap)
	suite.Require().True(ok)
	suite.Require().Equal(pairAddr, addr)
}

func (suite *KeeperTestSuite) TestDojoswapCW20QuoteRejected() {
	msg := astroportMsg()
	msg.Play = types.PlayInitDojoswapPair
	msg.Quote.Token = types.NewContractToken(cw20Addr)

	ctx, _ := suite.ctx.CacheContext()
	_, err := suite.keeper.InitMigration(ctx, creator, msg)
	suite.Require().ErrorIs(err, types.ErrNotImplemented)
	suite.Require().Zero(suite.keeper.GetReplyIDCounter(ctx))
	suite.Require().False(suite.keeper.HasContinuation(ctx, 1))

	// the host discards the failed request's writes
	suite.Require().False(suite.keeper.HasConfig(suite.ctx))
	_, err = suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestUnknownPlay() {
	msg := astroportMsg()
	msg.Play = "init_osmosis_pair"

	_, err := suite.keeper.InitMigration(suite.ctx, creator, msg)
	suite.Require().ErrorIs(err, types.ErrValidation)
	suite.Require().ErrorContains(err, "unrecognized play: init_osmosis_pair")

	// config is written before the play is resolved; nothing else is
	suite.Require().True(suite.keeper.HasConfig(suite.ctx))
	suite.Require().Zero(suite.keeper.GetReplyIDCounter(suite.ctx))
	pending, err := suite.keeper.GetPendingContinuations(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Empty(pending)
}

func (suite *KeeperTestSuite) TestInitMigrationValidation() {
	msg := astroportMsg()
	msg.FeeRecipient = "fees"

	_, err := suite.keeper.InitMigration(suite.ctx, creator, msg)
	suite.Require().ErrorIs(err, types.ErrValidation)
	suite.Require().False(suite.keeper.HasConfig(suite.ctx))
}

func (suite *KeeperTestSuite) TestInitMigrationOnce() {
	_, err := suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().NoError(err)

	_, err = suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().ErrorIs(err, types.ErrAlreadyInitialized)
	suite.Require().Equal(uint64(1), suite.keeper.GetReplyIDCounter(suite.ctx))
}

func (suite *KeeperTestSuite) TestFailedReply() {
	_, err := suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().NoError(err)

	_, err = suite.keeper.Reply(suite.ctx, wasmvmtypes.Reply{
		ID:     1,
		Result: wasmvmtypes.SubMsgResult{Err: "pair already exists"},
	})
	suite.Require().ErrorIs(err, types.ErrExchangeReply)
	suite.Require().False(suite.keeper.HasContinuation(suite.ctx, 1))
	suite.Require().Equal(types.StatusPairCreationPending, suite.keeper.GetStatus(suite.ctx))

	_, ok := suite.keeper.GetPairAddress(suite.ctx, plays.ExchangeAstroport)
	suite.Require().False(ok)
}

func (suite *KeeperTestSuite) TestReplyUnknownKind() {
	suite.Require().NoError(suite.keeper.RegisterContinuation(suite.ctx, 5, testContinuation("osmosis_create_pair")))

	_, err := suite.keeper.Reply(suite.ctx, wasmvmtypes.Reply{ID: 5, Result: okResult})
	suite.Require().ErrorIs(err, types.ErrUnknownContinuationKind)
	suite.Require().False(suite.keeper.HasContinuation(suite.ctx, 5))
}

func (suite *KeeperTestSuite) TestPairAddressWriteOnce() {
	suite.Require().NoError(suite.keeper.SetPairAddress(suite.ctx, plays.ExchangeAstroport, pairAddr))

	err := suite.keeper.SetPairAddress(suite.ctx, plays.ExchangeAstroport, cw20Addr)
	suite.Require().ErrorIs(err, types.ErrPairAddressAlreadySet)

	// another exchange has its own slot
	suite.Require().NoError(suite.keeper.SetPairAddress(suite.ctx, plays.ExchangeDojoswap, cw20Addr))
	suite.Require().Len(suite.keeper.GetAllPairAddresses(suite.ctx), 2)
}

func (suite *KeeperTestSuite) TestQueryConfig() {
	_, err := suite.keeper.QueryConfig(suite.ctx)
	suite.Require().ErrorIs(err, types.ErrNotInitialized)

	_, err = suite.keeper.QueryPairAddress(suite.ctx, plays.ExchangeAstroport)
	suite.Require().ErrorIs(err, types.ErrNotInitialized)

	_, err = suite.keeper.InitMigration(suite.ctx, creator, astroportMsg())
	suite.Require().NoError(err)

	resp, err := suite.keeper.QueryConfig(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(types.PlayInitAstroportPair, resp.Config.Play)
	suite.Require().Equal(types.DefaultParams(), resp.Params)
	suite.Require().Equal("pair_creation_pending", resp.Status)
}
