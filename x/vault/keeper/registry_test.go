package keeper_test

import (
	"encoding/json"
	"math"

	"pgregory.net/rapid"

	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

func testContinuation(kind string) types.Continuation {
	return types.Continuation{Kind: kind, Data: json.RawMessage(`{"n":1}`)}
}

func (suite *KeeperTestSuite) TestNextReplyIDIsMonotonic() {
	suite.Require().Zero(suite.keeper.GetReplyIDCounter(suite.ctx))

	for want := uint64(1); want <= 3; want++ {
		id, err := suite.keeper.NextReplyID(suite.ctx)
		suite.Require().NoError(err)
		suite.Require().Equal(want, id)
	}
	suite.Require().Equal(uint64(3), suite.keeper.GetReplyIDCounter(suite.ctx))
}

func (suite *KeeperTestSuite) TestNextReplyIDExhausted() {
	suite.keeper.SetReplyIDCounter(suite.ctx, math.MaxUint64)

	_, err := suite.keeper.NextReplyID(suite.ctx)
	suite.Require().ErrorIs(err, types.ErrArithmeticOverflow)
	suite.Require().Equal(uint64(math.MaxUint64), suite.keeper.GetReplyIDCounter(suite.ctx))
}

func (suite *KeeperTestSuite) TestRegisterAndResolve() {
	cont := testContinuation("astroport_create_pair")
	suite.Require().NoError(suite.keeper.RegisterContinuation(suite.ctx, 7, cont))
	suite.Require().True(suite.keeper.HasContinuation(suite.ctx, 7))

	got, err := suite.keeper.ResolveContinuation(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Equal(cont.Kind, got.Kind)
	suite.Require().JSONEq(string(cont.Data), string(got.Data))
	suite.Require().False(suite.keeper.HasContinuation(suite.ctx, 7))

	_, err = suite.keeper.ResolveContinuation(suite.ctx, 7)
	suite.Require().ErrorIs(err, types.ErrUnknownCorrelationID)
}

func (suite *KeeperTestSuite) TestResolveNeverIssued() {
	_, err := suite.keeper.ResolveContinuation(suite.ctx, 99)
	suite.Require().ErrorIs(err, types.ErrUnknownCorrelationID)
}

func (suite *KeeperTestSuite) TestRegisterDuplicate() {
	suite.Require().NoError(suite.keeper.RegisterContinuation(suite.ctx, 1, testContinuation("a")))

	err := suite.keeper.RegisterContinuation(suite.ctx, 1, testContinuation("b"))
	suite.Require().ErrorIs(err, types.ErrDuplicateCorrelationID)

	got, err := suite.keeper.ResolveContinuation(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Equal("a", got.Kind)
}

func (suite *KeeperTestSuite) TestRegisterRequiresKind() {
	err := suite.keeper.RegisterContinuation(suite.ctx, 1, types.Continuation{})
	suite.Require().ErrorIs(err, types.ErrValidation)
	suite.Require().False(suite.keeper.HasContinuation(suite.ctx, 1))
}

func (suite *KeeperTestSuite) TestPendingContinuationsOrdered() {
	for _, id := range []uint64{300, 2, 1 << 40} {
		suite.Require().NoError(suite.keeper.RegisterContinuation(suite.ctx, id, testContinuation("k")))
	}

	pending, err := suite.keeper.GetPendingContinuations(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 3)
	suite.Require().Equal(uint64(2), pending[0].ReplyID)
	suite.Require().Equal(uint64(300), pending[1].ReplyID)
	suite.Require().Equal(uint64(1<<40), pending[2].ReplyID)
}

// Every issued id resolves exactly once, in any order.
func (suite *KeeperTestSuite) TestRegistryResolvesOnce() {
	rapid.Check(suite.T(), func(t *rapid.T) {
		ctx, _ := suite.ctx.CacheContext()

		n := rapid.IntRange(1, 20).Draw(t, "n")
		issued := make([]uint64, 0, n)
		for i := 0; i < n; i++ {
			id, err := suite.keeper.NextReplyID(ctx)
			if err != nil {
				t.Fatalf("next reply id: %v", err)
			}
			if err := suite.keeper.RegisterContinuation(ctx, id, testContinuation("k")); err != nil {
				t.Fatalf("register %d: %v", id, err)
			}
			issued = append(issued, id)
		}

		order := rapid.Permutation(issued).Draw(t, "order")
		for _, id := range order {
			if _, err := suite.keeper.ResolveContinuation(ctx, id); err != nil {
				t.Fatalf("first resolve of %d: %v", id, err)
			}
			if _, err := suite.keeper.ResolveContinuation(ctx, id); err == nil {
				t.Fatalf("reply id %d resolved twice", id)
			}
		}

		pending, err := suite.keeper.GetPendingContinuations(ctx)
		if err != nil {
			t.Fatalf("pending: %v", err)
		}
		if len(pending) != 0 {
			t.Fatalf("%d continuations left", len(pending))
		}
	})
}
