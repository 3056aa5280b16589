package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// productDetailColumns is the SELECT list shared by every read that returns
// a full product with taxonomy names resolved. Aliases: p products,
// d designers, m makers, c categories, st styles, pe periods, co countries.
const productDetailColumns = `
p.id, p.name, COALESCE(p.slug, ''), COALESCE(p.sku, ''),
COALESCE(p.short_description, ''), COALESCE(p.long_description, ''),
p.price, p.status,
p.designer_id, p.maker_id, p.category_id, p.style_id, p.period_id, p.country_id,
COALESCE(p.year_created, ''), COALESCE(p.product_dimensions, ''),
COALESCE(p.box_dimensions, ''), COALESCE(p.materials, ''),
COALESCE(p.condition, ''), COALESCE(p.featured_image_url, ''),
p.created_at, p.updated_at,
COALESCE(d.name, ''), COALESCE(m.name, ''), COALESCE(c.name, ''),
COALESCE(st.name, ''), COALESCE(pe.name, ''), COALESCE(co.name, '')`

const productDetailJoins = `
FROM products p
LEFT JOIN designers d ON d.id = p.designer_id
LEFT JOIN makers m ON m.id = p.maker_id
LEFT JOIN categories c ON c.id = p.category_id
LEFT JOIN styles st ON st.id = p.style_id
LEFT JOIN periods pe ON pe.id = p.period_id
LEFT JOIN countries co ON co.id = p.country_id`

func scanProductDetail(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.SKU,
		&p.ShortDescription, &p.LongDescription,
		&p.Price, &p.Status,
		&p.DesignerID, &p.MakerID, &p.CategoryID, &p.StyleID, &p.PeriodID, &p.CountryID,
		&p.YearCreated, &p.ProductDimensions,
		&p.BoxDimensions, &p.Materials,
		&p.Condition, &p.FeaturedImageURL,
		&p.CreatedAt, &p.UpdatedAt,
		&p.DesignerName, &p.MakerName, &p.CategoryName,
		&p.StyleName, &p.PeriodName, &p.CountryName,
	)
	return p, err
}

// buildProductFilter renders filter as a WHERE clause with positional args
// starting at $1.
func buildProductFilter(filter domain.ProductFilter) (string, []any) {
	var clauses []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		clauses = append(clauses, fmt.Sprintf("p.status = ANY(%s)", arg(statuses)))
	}
	if filter.DesignerID != "" {
		clauses = append(clauses, fmt.Sprintf("p.designer_id = %s", arg(filter.DesignerID)))
	}
	if filter.MakerID != "" {
		clauses = append(clauses, fmt.Sprintf("p.maker_id = %s", arg(filter.MakerID)))
	}
	if filter.CategoryID != "" {
		clauses = append(clauses, fmt.Sprintf("p.category_id = %s", arg(filter.CategoryID)))
	}
	if filter.StyleID != "" {
		clauses = append(clauses, fmt.Sprintf("p.style_id = %s", arg(filter.StyleID)))
	}
	if filter.PeriodID != "" {
		clauses = append(clauses, fmt.Sprintf("p.period_id = %s", arg(filter.PeriodID)))
	}
	if filter.CountryID != "" {
		clauses = append(clauses, fmt.Sprintf("p.country_id = %s", arg(filter.CountryID)))
	}
	if filter.ColorID != "" {
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM product_colors pc WHERE pc.product_id = p.id AND pc.color_id = %s)",
			arg(filter.ColorID)))
	}
	if filter.Search != "" {
		clauses = append(clauses, fmt.Sprintf("p.name ILIKE %s", arg("%"+filter.Search+"%")))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// taxonomyTable maps a kind to its table name. Kinds are validated in the
// app layer; this is the last line of defense before SQL interpolation.
func taxonomyTable(kind domain.TaxonomyKind) (string, error) {
	switch kind {
	case domain.TaxonomyDesigners, domain.TaxonomyMakers, domain.TaxonomyCategories,
		domain.TaxonomyStyles, domain.TaxonomyPeriods, domain.TaxonomyCountries,
		domain.TaxonomyColors:
		return string(kind), nil
	}
	return "", domain.ErrInvalidTaxonomyKind
}
