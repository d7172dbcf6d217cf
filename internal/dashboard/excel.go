package dashboard

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const settlementSheet = "정산"

var settlementHeader = []string{
	"강사",
	"수업 수",
	"예약",
	"출석",
	"결석",
	"1회 강사료",
	"강사료 합계",
}

var settlementColumnWidths = []float64{20, 10, 10, 10, 10, 14, 16}

// GenerateSettlementExcel writes one row per instructor, a totals row and the membership sales
func GenerateSettlementExcel(report *SettlementResponse) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(settlementSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("시트 생성 실패: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("기본 시트 삭제 실패: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("헤더 스타일 생성 실패: %w", err)
	}

	// 1행: 제목, 3행: 헤더, 4행부터 강사별 데이터
	if err := f.SetCellValue(settlementSheet, "A1", fmt.Sprintf("%s 정산", report.Month)); err != nil {
		f.Close()
		return nil, fmt.Errorf("제목 입력 실패: %w", err)
	}

	headerRow := 3
	if err := setRow(f, headerRow, toCells(settlementHeader)); err != nil {
		f.Close()
		return nil, err
	}
	first, _ := excelize.CoordinatesToCellName(1, headerRow)
	last, _ := excelize.CoordinatesToCellName(len(settlementHeader), headerRow)
	if err := f.SetCellStyle(settlementSheet, first, last, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("헤더 스타일 적용 실패: %w", err)
	}

	for i, width := range settlementColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("열 이름 변환 실패: %w", err)
		}
		if err := f.SetColWidth(settlementSheet, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("열 너비 설정 실패: %w", err)
		}
	}

	row := headerRow + 1
	for _, ins := range report.Instructors {
		values := []interface{}{
			ins.InstructorName,
			ins.Classes,
			ins.Reservations,
			ins.Attended,
			ins.Absent,
			ins.PayPerClass,
			ins.Pay,
		}
		if err := setRow(f, row, values); err != nil {
			f.Close()
			return nil, err
		}
		row++
	}

	totals := []interface{}{"합계", report.TotalClasses, "", "", "", "", report.TotalPay}
	if err := setRow(f, row, totals); err != nil {
		f.Close()
		return nil, err
	}

	row += 2
	sales := [][]interface{}{
		{"회원권 판매 건수", report.MembershipSales.Count},
		{"회원권 매출", report.MembershipSales.Revenue},
	}
	for _, values := range sales {
		if err := setRow(f, row, values); err != nil {
			f.Close()
			return nil, err
		}
		row++
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("엑셀 파일 쓰기 실패: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("엑셀 파일 닫기 실패: %w", err)
	}

	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("좌표 변환 실패: %w", err)
	}
	if err := f.SetSheetRow(settlementSheet, cell, &values); err != nil {
		return fmt.Errorf("%d행 입력 실패: %w", row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
