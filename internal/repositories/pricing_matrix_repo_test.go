package repositories

import (
	"context"
	"errors"
	"testing"

	"chenu2/internal/models"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PricingMatrixRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    PricingMatrixRepository
	context context.Context
}

func (suite *PricingMatrixRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewPricingMatrixRepository(mock)
	suite.context = context.Background()
}

func (suite *PricingMatrixRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestPricingMatrixRepoTestSuite(t *testing.T) {
	suite.Run(t, new(PricingMatrixRepoTestSuite))
}

func (suite *PricingMatrixRepoTestSuite) TestFindTier_Found() {
	rows := pgxmock.NewRows([]string{"id", "product_id", "option_name", "max_width", "max_height", "price"}).
		AddRow(int64(1), int64(20), "투명유리", 1200, 2400, 240000)

	suite.mock.ExpectQuery(`SELECT id, product_id, option_name, max_width, max_height, price\s+FROM price_matrix\s+WHERE product_id = \$1 AND option_name = \$2 AND max_width >= \$3`).
		WithArgs(int64(20), "투명유리", 1100).
		WillReturnRows(rows)

	tier, err := suite.repo.FindTier(suite.context, 20, "투명유리", 1100)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tier)
	assert.Equal(suite.T(), 1200, tier.MaxWidth)
	assert.Equal(suite.T(), 240000, tier.Price)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *PricingMatrixRepoTestSuite) TestFindTier_BoundaryWidthIncluded() {
	rows := pgxmock.NewRows([]string{"id", "product_id", "option_name", "max_width", "max_height", "price"}).
		AddRow(int64(1), int64(20), "기본 세트", 1200, 2400, 180000)

	// a request at exactly max_width still matches the tier
	suite.mock.ExpectQuery(`FROM price_matrix`).
		WithArgs(int64(20), "기본 세트", 1200).
		WillReturnRows(rows)

	tier, err := suite.repo.FindTier(suite.context, 20, "기본 세트", 1200)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tier)
	assert.Equal(suite.T(), 180000, tier.Price)
}

func (suite *PricingMatrixRepoTestSuite) TestFindTier_NoCoveringTier() {
	suite.mock.ExpectQuery(`FROM price_matrix`).
		WithArgs(int64(20), "투명유리", 5000).
		WillReturnError(pgx.ErrNoRows)

	tier, err := suite.repo.FindTier(suite.context, 20, "투명유리", 5000)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), tier)
}

func (suite *PricingMatrixRepoTestSuite) TestFindTier_QueryError() {
	suite.mock.ExpectQuery(`FROM price_matrix`).
		WithArgs(int64(20), "투명유리", 1100).
		WillReturnError(errors.New("connection refused"))

	_, err := suite.repo.FindTier(suite.context, 20, "투명유리", 1100)
	assert.Error(suite.T(), err)
}

func (suite *PricingMatrixRepoTestSuite) TestCreate_DefaultsUnboundedDimensions() {
	rows := pgxmock.NewRows([]string{"id"}).AddRow(int64(5))

	suite.mock.ExpectQuery(`INSERT INTO price_matrix`).
		WithArgs(int64(20), "투명유리", 99999, 99999, 240000).
		WillReturnRows(rows)

	row := &models.PricingMatrix{ProductID: 20, OptionName: "투명유리", Price: 240000}
	err := suite.repo.Create(suite.context, row)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), row.ID)
	assert.Equal(suite.T(), 99999, row.MaxWidth)
	assert.Equal(suite.T(), 99999, row.MaxHeight)
}
