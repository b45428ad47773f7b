package listControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/NathanNorman/wegmans-shopping/controllers/respond"
	"github.com/NathanNorman/wegmans-shopping/store"
)

// GET /user/lists/:list_id/export
func ExportListToExcel(archive *store.ListArchive) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}
		listID, ok := listIDParam(c)
		if !ok {
			return
		}

		list, err := archive.GetList(userID, storeID, listID)
		if err != nil {
			respond.Error(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Shopping List")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"Product", "Quantity", "Unit", "Price", "Aisle"} {
			headerRow.AddCell().SetValue(h)
		}

		var total float64
		for _, item := range list.Items {
			row := sheet.AddRow()
			row.AddCell().SetValue(item.ProductName)
			row.AddCell().SetValue(item.Quantity)
			row.AddCell().SetValue(item.SellByUnit)
			row.AddCell().SetValue(item.UnitPrice)
			row.AddCell().SetValue(item.Aisle)
			total += item.UnitPrice * item.Quantity
		}

		totalRow := sheet.AddRow()
		totalRow.AddCell().SetValue("Total")
		totalRow.AddCell()
		totalRow.AddCell()
		totalRow.AddCell().SetValue(total)

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=list-%d.xlsx", list.ID))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
