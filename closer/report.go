package closer

import (
	"errors"

	"github.com/tidwall/sjson"
)

// Report 把一次批量关闭的失败渲染为 JSON 诊断文档。
//
// 输出形态取决于错误类型:
//   - 致命错误: {"fatal":true,"error":"...","aggregate":{...}}，
//     aggregate 字段仅在中止前已有可恢复失败时出现
//   - 聚合错误: {"message":"...","errors":["...",...]}，
//     errors 按失败的遭遇顺序排列
//   - 其他错误: {"error":"..."}
//
// 适用于把关闭失败写入结构化日志或上报接口。
//
// 参数:
//   - err: 批量关闭返回的错误，不能为 nil
//
// 返回值:
//   - string: JSON 文档
//   - error: 文档构造失败时返回非 nil（正常情况下不会发生）
func Report(err error) (string, error) {
	var fe *FatalError
	if errors.As(err, &fe) {
		doc, serr := sjson.Set("{}", "fatal", true)
		if serr != nil {
			return "", serr
		}
		doc, serr = sjson.Set(doc, "error", err.Error())
		if serr != nil {
			return "", serr
		}
		if agg := fe.Aggregate(); agg != nil {
			aggDoc, aerr := aggregateDoc(agg)
			if aerr != nil {
				return "", aerr
			}
			doc, serr = sjson.SetRaw(doc, "aggregate", aggDoc)
			if serr != nil {
				return "", serr
			}
		}
		return doc, nil
	}

	var agg *AggregateError
	if errors.As(err, &agg) {
		return aggregateDoc(agg)
	}

	return sjson.Set("{}", "error", err.Error())
}

// aggregateDoc 渲染单个聚合错误。
func aggregateDoc(agg *AggregateError) (string, error) {
	doc, err := sjson.Set("{}", "message", agg.Message())
	if err != nil {
		return "", err
	}
	for _, sub := range agg.Errors() {
		doc, err = sjson.Set(doc, "errors.-1", sub.Error())
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}
