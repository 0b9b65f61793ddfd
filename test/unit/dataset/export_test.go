package dataset

import "github.com/anoideaopen/whitebox/core/reflectx"

var DataSet = reflectx.MustClass[dataSet](
	reflectx.WithName("DataSet"),
	reflectx.WithMethod("returnStringWithNoArgument", dataSet.returnStringWithNoArgument),
	reflectx.WithMethod("returnStringWithArgument", dataSet.returnStringWithArgument),
	reflectx.WithMethod("returnStringWithArguments", dataSet.returnStringWithArguments),
	reflectx.WithMethod("returnIntegerWithNoArgument", dataSet.returnIntegerWithNoArgument),
	reflectx.WithMethod("returnIntegerWithArgument", dataSet.returnIntegerWithArgument),
	reflectx.WithMethod("returnIntegerWithArguments", dataSet.returnIntegerWithArguments),
	reflectx.WithMethod("returnBooleanWithNoArgument", dataSet.returnBooleanWithNoArgument),
	reflectx.WithMethod("returnBooleanWithArgument", dataSet.returnBooleanWithArgument),
	reflectx.WithMethod("returnBooleanWithArguments", dataSet.returnBooleanWithArguments),
	reflectx.WithMethod("returnListWithArguments", dataSet.returnListWithArguments),
	reflectx.WithMethod("returnMapWithArguments", dataSet.returnMapWithArguments),
)

var StaticDataSet = reflectx.MustClass[staticDataSet](
	reflectx.WithName("StaticDataSet"),
	reflectx.WithStatic("returnStringWithNoArgument", staticReturnStringWithNoArgument),
	reflectx.WithStatic("returnStringWithArgument", staticReturnStringWithArgument),
	reflectx.WithStatic("returnStringWithArguments", staticReturnStringWithArguments),
	reflectx.WithStatic("returnIntegerWithNoArgument", staticReturnIntegerWithNoArgument),
	reflectx.WithStatic("returnIntegerWithArgument", staticReturnIntegerWithArgument),
	reflectx.WithStatic("returnBooleanWithArgument", staticReturnBooleanWithArgument),
)

var Entity = reflectx.MustClass[entity](reflectx.WithName("Entity"))

var Guarded = reflectx.MustClass[guarded](
	reflectx.WithName("Guarded"),
	reflectx.WithConstructor(newGuarded),
	reflectx.WithMethod("returnToken", (*guarded).returnToken),
)
