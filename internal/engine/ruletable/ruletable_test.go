package ruletable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylegen/internal/adapters/sheet"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports/mocks"
	"go.trai.ch/stylegen/internal/engine/ruletable"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestTable_InsertDeleteClear(t *testing.T) {
	s := sheet.New()
	table := ruletable.New(s)

	idx, err := table.Insert("a{color:red}", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = table.Insert("b{color:blue}", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, table.Len())

	require.NoError(t, table.Delete(0))
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"b{color:blue}"}, s.Rules())

	rules, err := table.Clear()
	require.NoError(t, err)
	assert.NotNil(t, rules)
	assert.Empty(t, rules)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 0, s.Len())
}

func TestTable_ClearEmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSheet := mocks.NewMockStylesheet(ctrl)
	table := ruletable.New(mockSheet)

	rules, err := table.Clear()
	require.NoError(t, err)
	assert.Equal(t, []string{}, rules)
}

func TestTable_ClearDeletesAtIndexZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSheet := mocks.NewMockStylesheet(ctrl)
	table := ruletable.New(mockSheet)

	for i := range 3 {
		mockSheet.EXPECT().InsertRule(gomock.Any(), i).Return(i, nil)
		_, err := table.Insert("a{}", i)
		require.NoError(t, err)
	}

	mockSheet.EXPECT().DeleteRule(0).Return(nil).Times(3)

	_, err := table.Clear()
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestTable_InsertFailureKeepsCount(t *testing.T) {
	s := sheet.New()
	table := ruletable.New(s)

	_, err := table.Insert("a{}", 1)
	require.ErrorIs(t, err, domain.ErrRuleIndexOutOfRange)

	_, err = table.Insert("not a rule", 0)
	require.ErrorIs(t, err, domain.ErrInvalidRule)

	assert.Equal(t, 0, table.Len())
}

func TestTable_InsertReturnsSheetIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSheet := mocks.NewMockStylesheet(ctrl)
	table := ruletable.New(mockSheet)

	mockSheet.EXPECT().InsertRule("a{}", 5).Return(2, nil)

	idx, err := table.Insert("a{}", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestTable_DeleteFailureKeepsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSheet := mocks.NewMockStylesheet(ctrl)
	table := ruletable.New(mockSheet)

	mockSheet.EXPECT().InsertRule("a{}", 0).Return(0, nil)
	_, err := table.Insert("a{}", 0)
	require.NoError(t, err)

	mockSheet.EXPECT().DeleteRule(4).Return(zerr.Wrap(domain.ErrRuleIndexOutOfRange, "index 4"))
	err = table.Delete(4)
	require.ErrorIs(t, err, domain.ErrRuleIndexOutOfRange)
	assert.Equal(t, 1, table.Len())
}

func TestTable_ClearStopsOnSheetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSheet := mocks.NewMockStylesheet(ctrl)
	table := ruletable.New(mockSheet)

	mockSheet.EXPECT().InsertRule(gomock.Any(), gomock.Any()).Return(0, nil).Times(2)
	_, _ = table.Insert("a{}", 0)
	_, _ = table.Insert("b{}", 0)

	gomock.InOrder(
		mockSheet.EXPECT().DeleteRule(0).Return(nil),
		mockSheet.EXPECT().DeleteRule(0).Return(domain.ErrRuleIndexOutOfRange),
	)

	rules, err := table.Clear()
	require.ErrorIs(t, err, domain.ErrRuleIndexOutOfRange)
	assert.Equal(t, []string{}, rules)
	assert.Equal(t, 1, table.Len())
}
